package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type LoginUseCase interface {
	Execute(ctx context.Context, email, password string) (domain.Session, error)
}
