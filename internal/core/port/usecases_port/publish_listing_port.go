package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type PublishListingUseCase interface {
	// Execute validates the draft and, only if it is clean, builds the
	// variant payload and submits it. Validation failures come back as
	// domain.ValidationErrors with zero network calls made.
	Execute(ctx context.Context, d domain.ListingDraft) (*domain.Property, error)
}
