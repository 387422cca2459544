package contracts

import (
	"testing"

	"skidmo-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lodgeFields() map[string]interface{} {
	fields := map[string]interface{}{
		"property_type":    "LODGE_HOTEL",
		"term_category":    "SHORT",
		"purpose":          "RENT",
		"title":            "Riverside Lodge",
		"address":          "Mosi-oa-Tunya Road, Livingstone",
		"description":      "",
		"price_negotiable": false,
		"security":         true,
		"pet_friendly":     false,
		"allow_smoking":    false,
		"allow_kids":       true,
		"is_agent":         false,
		"rental_price":     950.0,
		"room_type":        "DOUBLE",
		"bed_type":         "QUEEN",
		"view_type":        "RIVER",
		"room_count":       3,
		"bathroom_count":   2,
	}
	amenityFlags := domain.LodgeAmenities{}
	for name, value := range amenityFlags.Flags() {
		fields[name] = value
	}
	return fields
}

func TestValidateCreationFieldsLodgeAcceptsFullPayload(t *testing.T) {
	assert.NoError(t, ValidateCreationFields(domain.TypeLodgeHotel, lodgeFields()))
}

func TestValidateCreationFieldsLodgeRequiresEveryAmenityFlag(t *testing.T) {
	fields := lodgeFields()
	delete(fields, "has_wifi")
	assert.Error(t, ValidateCreationFields(domain.TypeLodgeHotel, fields))
}

func TestValidateCreationFieldsHouse(t *testing.T) {
	draft := domain.ListingDraft{
		PropertyType:  domain.TypeHouse,
		TermCategory:  domain.TermLong,
		Purpose:       domain.PurposeRent,
		Title:         "Family home",
		Address:       "12 Sable Road, Lusaka",
		Price:         "2500",
		Rooms:         "4",
		Bedrooms:      "3",
		Bathrooms:     "2",
		PhotoURIs:     []string{"/tmp/a.jpg"},
		TermsAccepted: true,
	}
	payload, err := domain.BuildCreationPayload(draft)
	require.NoError(t, err)

	assert.NoError(t, ValidateCreationFields(domain.TypeHouse, payload.Fields))
}

func TestValidateCreationFieldsBoardingUsesHouseContract(t *testing.T) {
	draft := domain.ListingDraft{
		PropertyType:  domain.TypeBoarding,
		TermCategory:  domain.TermLong,
		Purpose:       domain.PurposeRent,
		Title:         "Boarding rooms",
		Address:       "Off Great East Road",
		Price:         "900",
		Rooms:         "6",
		Bedrooms:      "1",
		Bathrooms:     "1",
		PhotoURIs:     []string{"/tmp/a.jpg"},
		TermsAccepted: true,
	}
	payload, err := domain.BuildCreationPayload(draft)
	require.NoError(t, err)

	assert.NoError(t, ValidateCreationFields(domain.TypeBoarding, payload.Fields))
}

func TestValidateCreationFieldsApartment(t *testing.T) {
	draft := domain.ListingDraft{
		PropertyType:  domain.TypeApartment,
		TermCategory:  domain.TermLong,
		Purpose:       domain.PurposeRent,
		Title:         "Two-bed flat",
		Address:       "Northmead, Lusaka",
		Price:         "3200",
		Rooms:         "2",
		Bedrooms:      "2",
		Bathrooms:     "1",
		PhotoURIs:     []string{"/tmp/a.jpg"},
		TermsAccepted: true,
	}
	payload, err := domain.BuildCreationPayload(draft)
	require.NoError(t, err)

	assert.NoError(t, ValidateCreationFields(domain.TypeApartment, payload.Fields))
}

func TestValidateCreationFieldsCommercial(t *testing.T) {
	draft := domain.ListingDraft{
		PropertyType:  domain.TypeCommercial,
		TermCategory:  domain.TermLong,
		Purpose:       domain.PurposeBuy,
		Title:         "Shop unit on Cairo Road",
		Address:       "Cairo Road, Lusaka",
		Price:         "850000",
		Bathrooms:     "1",
		Pool:          "COMMON",
		PhotoURIs:     []string{"/tmp/a.jpg"},
		TermsAccepted: true,
	}
	payload, err := domain.BuildCreationPayload(draft)
	require.NoError(t, err)

	assert.NoError(t, ValidateCreationFields(domain.TypeCommercial, payload.Fields))
}

func TestValidateCreationFieldsLodgeHotel(t *testing.T) {
	draft := domain.ListingDraft{
		PropertyType:   domain.TypeLodgeHotel,
		TermCategory:   domain.TermShort,
		Purpose:        domain.PurposeRent,
		Title:          "Chalets by the falls",
		Address:        "Mosi-oa-Tunya Road, Livingstone",
		Price:          "950",
		Rooms:          "3",
		Bathrooms:      "2",
		RoomType:       "DOUBLE",
		BedType:        "QUEEN",
		ViewType:       "RIVER",
		LodgeAmenities: []string{"has_wifi", "has_pool_access"},
		PhotoURIs:      []string{"/tmp/a.jpg"},
		TermsAccepted:  true,
	}
	payload, err := domain.BuildCreationPayload(draft)
	require.NoError(t, err)

	assert.NoError(t, ValidateCreationFields(domain.TypeLodgeHotel, payload.Fields))
}

func TestValidateCreationFieldsMissingPriceFails(t *testing.T) {
	fields := lodgeFields()
	delete(fields, "rental_price")
	assert.Error(t, ValidateCreationFields(domain.TypeLodgeHotel, fields))
}

func TestValidateCreationFieldsUnknownTypeFails(t *testing.T) {
	assert.Error(t, ValidateCreationFields(domain.PropertyType("CASTLE"), map[string]interface{}{}))
}
