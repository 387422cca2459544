package usecase

import (
	"context"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

// ListReservations and MakeReservation are thin pass-throughs over the
// reservations API; they exist so screens depend on use case ports, not on
// the HTTP adapter.
type ListReservations struct {
	api port.ReservationsAPIPort
}

func NewListReservations(api port.ReservationsAPIPort) *ListReservations {
	return &ListReservations{api: api}
}

func (uc *ListReservations) Execute(ctx context.Context) ([]domain.Reservation, error) {
	return uc.api.ListReservations(ctx)
}

type MakeReservation struct {
	api    port.ReservationsAPIPort
	logger port.LoggerPort
}

func NewMakeReservation(api port.ReservationsAPIPort, logger port.LoggerPort) *MakeReservation {
	return &MakeReservation{
		api:    api,
		logger: logger.WithFields(port.Fields{"component": "MakeReservationUseCase"}),
	}
}

func (uc *MakeReservation) Execute(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error) {
	reservation, err := uc.api.CreateReservation(ctx, req)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Reservation created", port.Fields{
		"reservation_id": reservation.ID,
		"property_id":    reservation.PropertyID,
	})
	return reservation, nil
}
