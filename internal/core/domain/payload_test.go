package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func houseDraft() ListingDraft {
	return ListingDraft{
		PropertyType:  TypeHouse,
		TermCategory:  TermLong,
		Purpose:       PurposeRent,
		Title:         "Family home",
		Address:       "12 Sable Road, Lusaka",
		Price:         "2500",
		Bedrooms:      "3",
		Bathrooms:     "2",
		Rooms:         "4",
		Balcony:       "No",
		Patio:         "Yes",
		Pool:          "No",
		Security:      "Yes",
		PetFriendly:   "Yes",
		AllowSmoking:  "No",
		AllowKids:     "Yes",
		Garden:        GardenPrivate,
		PhotoURIs:     []string{"/tmp/a.jpg", "/tmp/b.jpg"},
		TermsAccepted: true,
	}
}

func TestBuildCreationPayloadHouse(t *testing.T) {
	payload, err := BuildCreationPayload(houseDraft())
	require.NoError(t, err)

	assert.Equal(t, TypeHouse, payload.PropertyType)
	assert.Equal(t, false, payload.Fields["is_boarding"])
	assert.Equal(t, 3, payload.Fields["bedroom_count"])
	assert.Equal(t, 2, payload.Fields["bathroom_count"])
	assert.Equal(t, 2500.0, payload.Fields["rental_price"])
	assert.NotContains(t, payload.Fields, "sale_price")
	assert.Equal(t, true, payload.Fields["has_patio"])
	assert.Equal(t, false, payload.Fields["has_balcony"])
	assert.Equal(t, true, payload.Fields["security"])
	assert.Equal(t, "PRIVATE", payload.Fields["garden"])
}

func TestBuildCreationPayloadBoardingSetsFlag(t *testing.T) {
	draft := houseDraft()
	draft.PropertyType = TypeBoarding

	payload, err := BuildCreationPayload(draft)
	require.NoError(t, err)
	assert.Equal(t, true, payload.Fields["is_boarding"])
}

func TestBuildCreationPayloadPriceRouting(t *testing.T) {
	draft := houseDraft()
	draft.Purpose = PurposeBuy
	draft.Price = "450000"

	payload, err := BuildCreationPayload(draft)
	require.NoError(t, err)
	assert.Equal(t, 450000.0, payload.Fields["sale_price"])
	assert.NotContains(t, payload.Fields, "rental_price")

	draft.Purpose = PurposeRentBuy
	draft.Price = "2500"
	draft.SalePrice = "450000"
	payload, err = BuildCreationPayload(draft)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, payload.Fields["rental_price"])
	assert.Equal(t, 450000.0, payload.Fields["sale_price"])
}

func TestBuildCreationPayloadApartmentKeepsRawRoomCount(t *testing.T) {
	draft := houseDraft()
	draft.PropertyType = TypeApartment
	draft.Rooms = "STUDIO"

	payload, err := BuildCreationPayload(draft)
	require.NoError(t, err)
	assert.Equal(t, "STUDIO", payload.Fields["room_count"])
}

func TestBuildCreationPayloadLodgeCarriesEveryAmenityFlag(t *testing.T) {
	draft := houseDraft()
	draft.PropertyType = TypeLodgeHotel
	draft.RoomType = "DOUBLE"
	draft.BedType = "QUEEN"
	draft.ViewType = "RIVER"
	draft.Rooms = "3"
	draft.StarRating = "4"
	draft.LodgeAmenities = []string{"has_wifi", "has_pool_access"}

	payload, err := BuildCreationPayload(draft)
	require.NoError(t, err)

	names := LodgeAmenityFields()
	require.NotEmpty(t, names)
	for _, name := range names {
		require.Contains(t, payload.Fields, name, "missing amenity flag %s", name)
	}
	assert.Equal(t, true, payload.Fields["has_wifi"])
	assert.Equal(t, true, payload.Fields["has_pool_access"])
	assert.Equal(t, false, payload.Fields["has_iron"])
	assert.Equal(t, 4, payload.Fields["star_rating"])
}

func TestBuildCreationPayloadLodgeRoomCountIsNotCapped(t *testing.T) {
	draft := houseDraft()
	draft.PropertyType = TypeLodgeHotel
	draft.RoomType = "DOUBLE"
	draft.BedType = "QUEEN"
	draft.Rooms = "12"

	payload, err := BuildCreationPayload(draft)
	require.NoError(t, err)
	assert.Equal(t, 12, payload.Fields["room_count"])

	// The floor of 1 still applies.
	draft.Rooms = "0"
	payload, err = BuildCreationPayload(draft)
	require.NoError(t, err)
	assert.Equal(t, 1, payload.Fields["room_count"])
}

func TestBuildCreationPayloadUnknownTypeIsRejected(t *testing.T) {
	draft := houseDraft()
	draft.PropertyType = PropertyType("CASTLE")

	_, err := BuildCreationPayload(draft)
	assert.Error(t, err)
}

func TestBuildCreationPayloadAttachments(t *testing.T) {
	draft := houseDraft()
	draft.PhotoURIs = []string{"/tmp/a.jpg", "/tmp/b.jpg", "/tmp/c.jpg"}
	draft.VideoURIs = []string{"/tmp/walk.mp4", "/tmp/extra.mp4"}
	draft.OwnerProofURI = "/tmp/deed.pdf"

	payload, err := BuildCreationPayload(draft)
	require.NoError(t, err)

	require.Len(t, payload.Photos, 3)
	assert.Equal(t, "Photo 1", payload.Photos[0].Caption)
	assert.True(t, payload.Photos[0].IsPrimary)
	assert.Equal(t, "Photo 3", payload.Photos[2].Caption)
	assert.False(t, payload.Photos[2].IsPrimary)

	// Only the first video is kept.
	require.Len(t, payload.Videos, 1)
	assert.Equal(t, "Property walkthrough", payload.Videos[0].Caption)

	require.Len(t, payload.Documents, 1)
	assert.Equal(t, "owner_proof", payload.Documents[0].Field)
}

func TestClampRoomCount(t *testing.T) {
	cases := map[string]int{
		"3":     3,
		"1":     1,
		"5":     5,
		"9":     5,
		"0":     1,
		"-2":    1,
		"abc":   1,
		"":      1,
		"4.5":   1,
		"  2  ": 1,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ClampRoomCount(raw), "input %q", raw)
	}
}
