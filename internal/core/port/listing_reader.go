package port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

// ListingReaderPort is the read side of the marketplace listing API. The
// adapter normalizes raw records into summaries before they reach the core.
type ListingReaderPort interface {
	// ListByType fetches one variant's listing feed.
	ListByType(ctx context.Context, t domain.PropertyType) ([]domain.PropertySummary, error)
	// Get fetches one full listing record.
	Get(ctx context.Context, t domain.PropertyType, id string) (*domain.Property, error)
	// Filter runs the combined cross-variant filter endpoint.
	Filter(ctx context.Context, c domain.FilterCriteria) ([]domain.PropertySummary, error)
	// Count runs the same filter in count-only mode.
	Count(ctx context.Context, c domain.FilterCriteria) (int, error)
	// FilterOptions fetches the selectable filter vocabulary.
	FilterOptions(ctx context.Context) (*domain.FilterVocabulary, error)
}
