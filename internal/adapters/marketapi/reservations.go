package marketapi

import (
	"context"
	"fmt"
	"net/http"

	"skidmo-client/internal/core/domain"
)

func (c *Client) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := c.getJSON(ctx, "reservations/", nil, &reservations); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.postJSON(ctx, "reservations/", req, &reservation); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to create reservation: %w", err)
	}
	return &reservation, nil
}

func (c *Client) CancelReservation(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "reservations/"+id+"/", nil, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("MarketAPIClient: failed to cancel reservation %s: %w", id, err)
	}
	return nil
}
