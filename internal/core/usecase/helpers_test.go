package usecase

import (
	"context"
	"io"

	logger_adapter "skidmo-client/internal/adapters/logger"
	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

func testLogger() port.LoggerPort {
	return logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
}

// fakeReader scripts the read side of the listing API.
type fakeReader struct {
	listByType    func(t domain.PropertyType) ([]domain.PropertySummary, error)
	get           func(t domain.PropertyType, id string) (*domain.Property, error)
	filter        func(c domain.FilterCriteria) ([]domain.PropertySummary, error)
	count         func(c domain.FilterCriteria) (int, error)
	filterOptions func() (*domain.FilterVocabulary, error)
}

func (f *fakeReader) ListByType(_ context.Context, t domain.PropertyType) ([]domain.PropertySummary, error) {
	return f.listByType(t)
}

func (f *fakeReader) Get(_ context.Context, t domain.PropertyType, id string) (*domain.Property, error) {
	return f.get(t, id)
}

func (f *fakeReader) Filter(_ context.Context, c domain.FilterCriteria) ([]domain.PropertySummary, error) {
	return f.filter(c)
}

func (f *fakeReader) Count(_ context.Context, c domain.FilterCriteria) (int, error) {
	return f.count(c)
}

func (f *fakeReader) FilterOptions(_ context.Context) (*domain.FilterVocabulary, error) {
	return f.filterOptions()
}

// fakeWriter counts calls to the write side.
type fakeWriter struct {
	createCalls int
	created     *domain.Property
	createErr   error
}

func (f *fakeWriter) Create(_ context.Context, payload domain.CreationPayload) (*domain.Property, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &domain.Property{General: domain.BaseProperty{ID: "new-1", PropertyType: payload.PropertyType}}, nil
}

func (f *fakeWriter) Update(_ context.Context, t domain.PropertyType, id string, payload domain.CreationPayload) (*domain.Property, error) {
	return nil, nil
}

func (f *fakeWriter) Delete(_ context.Context, t domain.PropertyType, id string) error {
	return nil
}

func (f *fakeWriter) MyProperties(_ context.Context) ([]domain.PropertySummary, error) {
	return nil, nil
}
