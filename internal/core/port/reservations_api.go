package port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type ReservationsAPIPort interface {
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, id string) error
}
