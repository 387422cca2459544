package usecase

import (
	"context"
	"sync"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
	"skidmo-client/internal/core/port/usecases_port"
)

// placeholderFeedSize is how many client-generated cards a degraded feed
// shows, enough to fill the first screen.
const placeholderFeedSize = 10

// feedVariants is the fan-out order; BOARDING records arrive inside the house
// feed, so it is not fetched separately.
var feedVariants = []domain.PropertyType{
	domain.TypeHouse,
	domain.TypeApartment,
	domain.TypeCommercial,
	domain.TypeLodgeHotel,
}

// BrowseListings assembles the combined home feed: all variant feeds are
// fetched concurrently and concatenated in a fixed variant order regardless
// of which response arrived first. If any branch fails the whole feed
// degrades to placeholders rather than rendering a partial, misleading list.
type BrowseListings struct {
	reader port.ListingReaderPort
	logger port.LoggerPort
}

func NewBrowseListings(reader port.ListingReaderPort, logger port.LoggerPort) *BrowseListings {
	return &BrowseListings{
		reader: reader,
		logger: logger.WithFields(port.Fields{"component": "BrowseListingsUseCase"}),
	}
}

func (uc *BrowseListings) Execute(ctx context.Context) (usecases_port.Feed, error) {
	if err := ctx.Err(); err != nil {
		return usecases_port.Feed{}, err
	}

	results := make([][]domain.PropertySummary, len(feedVariants))
	errs := make([]error, len(feedVariants))

	var wg sync.WaitGroup
	for i, variant := range feedVariants {
		wg.Add(1)
		go func(i int, variant domain.PropertyType) {
			defer wg.Done()
			results[i], errs[i] = uc.reader.ListByType(ctx, variant)
		}(i, variant)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			uc.logger.Warn("Feed fetch failed, serving placeholders", port.Fields{
				"property_type": string(feedVariants[i]),
				"error":         err.Error(),
			})
			return usecases_port.Feed{
				Summaries: domain.PlaceholderBatch(placeholderFeedSize),
				Degraded:  true,
			}, nil
		}
	}

	var summaries []domain.PropertySummary
	for _, batch := range results {
		summaries = append(summaries, batch...)
	}
	uc.logger.Debug("Feed assembled", port.Fields{"listings": len(summaries)})
	return usecases_port.Feed{Summaries: summaries}, nil
}
