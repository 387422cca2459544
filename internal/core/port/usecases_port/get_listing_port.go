package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

// ListingDetail pairs the fetched record with the detail route its card
// navigates to.
type ListingDetail struct {
	Property *domain.Property
	Route    domain.DetailRoute
}

type GetListingUseCase interface {
	Execute(ctx context.Context, t domain.PropertyType, id string) (ListingDetail, error)
}
