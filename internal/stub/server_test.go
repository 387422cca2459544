package stub

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"skidmo-client/internal/adapters/forms"
	logger_adapter "skidmo-client/internal/adapters/logger"
	"skidmo-client/internal/adapters/marketapi"
	"skidmo-client/internal/adapters/session"
	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
	"skidmo-client/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server  *httptest.Server
	client  *marketapi.Client
	session port.SessionStorePort
	logger  port.LoggerPort
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
	server := httptest.NewServer(NewServer(NewStore(), "test-secret", logger).Handler())
	t.Cleanup(server.Close)

	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	client := marketapi.NewClient(server.URL+"/api/v1", store, session.NewClaimsDecoder())
	return &testEnv{server: server, client: client, session: store, logger: logger}
}

func (e *testEnv) login(t *testing.T, email string) {
	t.Helper()
	uc := usecase.NewLogin(e.client, session.NewClaimsDecoder(), e.session, e.logger)
	_, err := uc.Execute(context.Background(), email, "password123")
	require.NoError(t, err)
}

func TestLoginDecodesClaimsAndPersistsSession(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "demo@skidmo.test")

	current := env.session.Current()
	assert.NotEmpty(t, current.AccessToken)
	assert.NotEmpty(t, current.RefreshToken)
	assert.Equal(t, "user-1", current.Claims.UserID)
	assert.Equal(t, "demo@skidmo.test", current.Claims.Email)
	assert.True(t, current.Claims.IsVerified)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	uc := usecase.NewLogin(env.client, session.NewClaimsDecoder(), env.session, env.logger)

	_, err := uc.Execute(context.Background(), "demo@skidmo.test", "wrong")
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestBrowseFeedAgainstSeedData(t *testing.T) {
	env := newTestEnv(t)

	feed, err := usecase.NewBrowseListings(env.client, env.logger).Execute(context.Background())
	require.NoError(t, err)
	require.False(t, feed.Degraded)
	require.Len(t, feed.Summaries, 6)

	// Seed record 1 is fully populated.
	first := feed.Summaries[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "K2500/month", first.Price)
	assert.Equal(t, "Family home in Kabulonga", first.Title)

	// Seed record 2 is a sparse legacy record: every gap gets a default.
	second := feed.Summaries[1]
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, "K1800/month", second.Price)
	assert.Equal(t, 2, second.Bedrooms)
	assert.Equal(t, domain.DefaultAddress, second.Address)
	assert.Equal(t, domain.DefaultTitle(1), second.Title)
	assert.Equal(t, domain.PlaceholderImage(1), second.Image)

	// The malformed price in record 6 renders N/A, never an error.
	prices := make(map[string]string)
	for _, s := range feed.Summaries {
		prices[s.ID] = s.Price
	}
	assert.Equal(t, "N/A/night", prices["6"])
	assert.Equal(t, "K3200.5/month | K450000", prices["3"])
}

func TestFilterAndCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	minBedrooms := 3
	criteria := domain.FilterCriteria{
		Purpose:     domain.PurposeRent,
		MinBedrooms: &minBedrooms,
	}

	matches, err := env.client.Filter(ctx, criteria)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "1", matches[0].ID)

	count, err := env.client.Count(ctx, criteria)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFilterByLodgeAmenities(t *testing.T) {
	env := newTestEnv(t)

	count, err := env.client.Count(context.Background(), domain.FilterCriteria{
		EntertainmentAmenities: []string{"has_wifi"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = env.client.Count(context.Background(), domain.FilterCriteria{
		EntertainmentAmenities: []string{"has_game_console"},
	})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetListingDetail(t *testing.T) {
	env := newTestEnv(t)

	detail, err := usecase.NewGetListing(env.client, env.logger).Execute(context.Background(), domain.TypeLodgeHotel, "5")
	require.NoError(t, err)

	assert.Equal(t, "Riverside Lodge, Livingstone", detail.Property.General.Title)
	lodge, ok := detail.Property.Details.(*domain.LodgeHotelDetails)
	require.True(t, ok)
	require.NotNil(t, lodge.StarRating)
	assert.Equal(t, 4, *lodge.StarRating)
	assert.True(t, lodge.Amenities.HasWifi)
}

func TestGetListingNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.client.Get(context.Background(), domain.TypeHouse, "9999")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPublishListingEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "agent@skidmo.test")

	photo := filepath.Join(t.TempDir(), "front.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpegdata"), 0o644))

	draft := domain.ListingDraft{
		PropertyType:  domain.TypeHouse,
		TermCategory:  domain.TermLong,
		Purpose:       domain.PurposeRent,
		Title:         "New build in Ibex Hill",
		Address:       "Ibex Hill, Lusaka",
		Price:         "4200",
		Rooms:         "5",
		Bedrooms:      "4",
		Bathrooms:     "3",
		Balcony:       "Yes",
		Garden:        domain.GardenPrivate,
		PhotoURIs:     []string{photo},
		TermsAccepted: true,
	}

	uc := usecase.NewPublishListing(forms.NewDraftValidator(), env.client, env.logger)
	created, err := uc.Execute(context.Background(), draft)
	require.NoError(t, err)
	assert.NotEmpty(t, created.General.ID)
	assert.Equal(t, domain.TypeHouse, created.General.PropertyType)
	require.Len(t, created.General.Photos, 1)
	assert.True(t, created.General.Photos[0].IsPrimary)

	// The new listing shows up among the agent's own properties.
	mine, err := env.client.MyProperties(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(mine))
	for _, s := range mine {
		ids = append(ids, s.ID)
	}
	assert.Contains(t, ids, created.General.ID)
}

func TestPublishListingRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	photo := filepath.Join(t.TempDir(), "front.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpegdata"), 0o644))

	draft := domain.ListingDraft{
		PropertyType:  domain.TypeHouse,
		TermCategory:  domain.TermLong,
		Purpose:       domain.PurposeRent,
		Address:       "Ibex Hill, Lusaka",
		Price:         "4200",
		Rooms:         "5",
		Bedrooms:      "4",
		Bathrooms:     "3",
		PhotoURIs:     []string{photo},
		TermsAccepted: true,
	}

	uc := usecase.NewPublishListing(forms.NewDraftValidator(), env.client, env.logger)
	_, err := uc.Execute(context.Background(), draft)
	assert.Error(t, err)
}

func TestStaleAccessTokenIsRefreshedTransparently(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "demo@skidmo.test")

	// Corrupt the access token but keep the valid refresh token.
	current := env.session.Current()
	current.AccessToken = "stale-garbage"
	require.NoError(t, env.session.Save(current))

	me, err := env.client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo@skidmo.test", me.Email)

	// The store now holds a freshly issued pair.
	refreshed := env.session.Current()
	assert.NotEqual(t, "stale-garbage", refreshed.AccessToken)
	assert.Equal(t, "user-1", refreshed.Claims.UserID)
}

func TestReservationsAndMessaging(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "demo@skidmo.test")
	ctx := context.Background()

	reservations, err := env.client.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "5", reservations[0].PropertyID)

	threads, err := env.client.ListThreads(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 1)

	sent, err := env.client.SendMessage(ctx, threads[0].ID, "Can I view it on Saturday?")
	require.NoError(t, err)
	assert.Equal(t, "user-1", sent.SenderID)

	messages, err := env.client.ListMessages(ctx, threads[0].ID)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestFilterOptionsVocabulary(t *testing.T) {
	env := newTestEnv(t)

	vocab, err := env.client.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Contains(t, vocab.PropertyTypes, "LODGE_HOTEL")
	assert.Contains(t, vocab.AmenityCategories["entertainment"], "has_wifi")
}
