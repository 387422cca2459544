package port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

// ListingWriterPort is the write side of the marketplace listing API.
type ListingWriterPort interface {
	// Create submits a creation payload to the variant's create endpoint.
	Create(ctx context.Context, payload domain.CreationPayload) (*domain.Property, error)
	// Update submits changed fields for an existing listing.
	Update(ctx context.Context, t domain.PropertyType, id string, payload domain.CreationPayload) (*domain.Property, error)
	Delete(ctx context.Context, t domain.PropertyType, id string) error
	// MyProperties lists the authenticated user's own listings.
	MyProperties(ctx context.Context) ([]domain.PropertySummary, error)
}
