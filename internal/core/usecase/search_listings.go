package usecase

import (
	"context"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

// SearchListings runs the combined filter endpoint with the user's criteria.
type SearchListings struct {
	reader port.ListingReaderPort
	logger port.LoggerPort
}

func NewSearchListings(reader port.ListingReaderPort, logger port.LoggerPort) *SearchListings {
	return &SearchListings{
		reader: reader,
		logger: logger.WithFields(port.Fields{"component": "SearchListingsUseCase"}),
	}
}

func (uc *SearchListings) Execute(ctx context.Context, criteria domain.FilterCriteria) ([]domain.PropertySummary, error) {
	summaries, err := uc.reader.Filter(ctx, criteria)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("Search completed", port.Fields{"results": len(summaries)})
	return summaries, nil
}
