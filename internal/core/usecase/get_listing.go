package usecase

import (
	"context"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
	"skidmo-client/internal/core/port/usecases_port"
)

// GetListing fetches one full record and resolves the detail route its card
// navigates to.
type GetListing struct {
	reader port.ListingReaderPort
	logger port.LoggerPort
}

func NewGetListing(reader port.ListingReaderPort, logger port.LoggerPort) *GetListing {
	return &GetListing{
		reader: reader,
		logger: logger.WithFields(port.Fields{"component": "GetListingUseCase"}),
	}
}

func (uc *GetListing) Execute(ctx context.Context, t domain.PropertyType, id string) (usecases_port.ListingDetail, error) {
	property, err := uc.reader.Get(ctx, t, id)
	if err != nil {
		return usecases_port.ListingDetail{}, err
	}

	route, known := domain.RouteFor(t)
	if !known {
		uc.logger.Warn("No dedicated detail route for property type, using fallback", port.Fields{
			"property_type": string(t),
			"id":            id,
		})
	}
	return usecases_port.ListingDetail{Property: property, Route: route}, nil
}
