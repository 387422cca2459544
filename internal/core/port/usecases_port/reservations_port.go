package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type ListReservationsUseCase interface {
	Execute(ctx context.Context) ([]domain.Reservation, error)
}

type MakeReservationUseCase interface {
	Execute(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error)
}
