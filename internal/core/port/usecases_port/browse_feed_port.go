package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

// Feed is the combined cross-variant listing feed. Degraded is true when any
// branch of the fan-out failed and the summaries are client-generated
// placeholders.
type Feed struct {
	Summaries []domain.PropertySummary
	Degraded  bool
}

type BrowseFeedUseCase interface {
	Execute(ctx context.Context) (Feed, error)
}
