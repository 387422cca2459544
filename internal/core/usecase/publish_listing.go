package usecase

import (
	"context"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

// PublishListing takes a raw draft to a created listing: validate first,
// build the variant payload, then submit. An invalid draft is rejected with
// the full per-field error set and zero network calls.
type PublishListing struct {
	validator port.DraftValidatorPort
	writer    port.ListingWriterPort
	logger    port.LoggerPort
}

func NewPublishListing(validator port.DraftValidatorPort, writer port.ListingWriterPort, logger port.LoggerPort) *PublishListing {
	return &PublishListing{
		validator: validator,
		writer:    writer,
		logger:    logger.WithFields(port.Fields{"component": "PublishListingUseCase"}),
	}
}

func (uc *PublishListing) Execute(ctx context.Context, d domain.ListingDraft) (*domain.Property, error) {
	if errs := uc.validator.ValidateDraft(d); len(errs) > 0 {
		uc.logger.Debug("Draft rejected by validation", port.Fields{
			"property_type": string(d.PropertyType),
			"fields":        len(errs),
		})
		return nil, errs
	}

	payload, err := domain.BuildCreationPayload(d)
	if err != nil {
		return nil, err
	}

	created, err := uc.writer.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Listing published", port.Fields{
		"property_type": string(created.General.PropertyType),
		"id":            created.General.ID,
	})
	return created, nil
}
