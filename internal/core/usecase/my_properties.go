package usecase

import (
	"context"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

// MyProperties lists the authenticated user's own listings.
type MyProperties struct {
	writer port.ListingWriterPort
	logger port.LoggerPort
}

func NewMyProperties(writer port.ListingWriterPort, logger port.LoggerPort) *MyProperties {
	return &MyProperties{
		writer: writer,
		logger: logger.WithFields(port.Fields{"component": "MyPropertiesUseCase"}),
	}
}

func (uc *MyProperties) Execute(ctx context.Context) ([]domain.PropertySummary, error) {
	return uc.writer.MyProperties(ctx)
}
