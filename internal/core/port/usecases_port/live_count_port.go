package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

// LiveCountUseCase powers the "Show N Listings" affordance: every filter
// change requests a fresh count, debounced so request storms never reach the
// backend while the user is still adjusting.
type LiveCountUseCase interface {
	Request(ctx context.Context, c domain.FilterCriteria, deliver func(domain.CountResult))
}
