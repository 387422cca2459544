package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skidmo-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseListingsMergesVariantsInFixedOrder(t *testing.T) {
	reader := &fakeReader{
		listByType: func(pt domain.PropertyType) ([]domain.PropertySummary, error) {
			// Variants answer at different speeds; order must not depend
			// on arrival time.
			if pt == domain.TypeHouse {
				time.Sleep(30 * time.Millisecond)
			}
			return []domain.PropertySummary{{ID: string(pt) + "-1", PropertyType: pt}}, nil
		},
	}

	feed, err := NewBrowseListings(reader, testLogger()).Execute(context.Background())
	require.NoError(t, err)
	require.False(t, feed.Degraded)
	require.Len(t, feed.Summaries, 4)

	assert.Equal(t, domain.TypeHouse, feed.Summaries[0].PropertyType)
	assert.Equal(t, domain.TypeApartment, feed.Summaries[1].PropertyType)
	assert.Equal(t, domain.TypeCommercial, feed.Summaries[2].PropertyType)
	assert.Equal(t, domain.TypeLodgeHotel, feed.Summaries[3].PropertyType)
}

func TestBrowseListingsDegradesToPlaceholdersOnAnyFailure(t *testing.T) {
	reader := &fakeReader{
		listByType: func(pt domain.PropertyType) ([]domain.PropertySummary, error) {
			if pt == domain.TypeCommercial {
				return nil, errors.New("backend down")
			}
			return []domain.PropertySummary{{ID: string(pt) + "-1"}}, nil
		},
	}

	feed, err := NewBrowseListings(reader, testLogger()).Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, feed.Degraded)
	require.NotEmpty(t, feed.Summaries)

	for i, s := range feed.Summaries {
		assert.Equal(t, domain.PlaceholderImage(i), s.Image)
		assert.Equal(t, domain.DefaultAddress, s.Address)
		assert.Equal(t, domain.DefaultTitle(i), s.Title)
	}
}

func TestBrowseListingsHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &fakeReader{
		listByType: func(pt domain.PropertyType) ([]domain.PropertySummary, error) {
			t.Error("should not fetch after cancellation")
			return nil, nil
		},
	}

	_, err := NewBrowseListings(reader, testLogger()).Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
