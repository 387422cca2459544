package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type SearchListingsUseCase interface {
	Execute(ctx context.Context, c domain.FilterCriteria) ([]domain.PropertySummary, error)
}
