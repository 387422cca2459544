package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type MyPropertiesUseCase interface {
	Execute(ctx context.Context) ([]domain.PropertySummary, error)
}
