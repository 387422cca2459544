package marketapi

import (
	"net/url"
	"strconv"

	"skidmo-client/internal/core/domain"
)

// BuildFilterParams serializes the sparse criteria into query parameters.
// Only selected filters appear: nil pointers, empty strings and empty lists
// are omitted entirely rather than sent as zero values, so the backend never
// interprets "not filtering on this" as "must equal the zero value". Booleans
// travel as the literal strings "true"/"false".
func BuildFilterParams(c domain.FilterCriteria) url.Values {
	params := url.Values{}

	setString(params, "property_type", string(c.PropertyType))
	setString(params, "purpose", string(c.Purpose))
	setString(params, "term_category", string(c.TermCategory))
	setString(params, "garden", string(c.Garden))

	setFloat(params, "min_price", c.MinPrice)
	setFloat(params, "max_price", c.MaxPrice)

	setInt(params, "min_bedrooms", c.MinBedrooms)
	setInt(params, "max_bedrooms", c.MaxBedrooms)
	setInt(params, "min_bathrooms", c.MinBathrooms)
	setInt(params, "max_bathrooms", c.MaxBathrooms)

	setBool(params, "price_negotiable", c.PriceNegotiable)
	setBool(params, "has_pool", c.HasPool)
	setBool(params, "has_balcony", c.HasBalcony)
	setBool(params, "security", c.Security)
	setBool(params, "pet_friendly", c.PetFriendly)
	setBool(params, "allow_smoking", c.AllowSmoking)
	setBool(params, "allow_kids", c.AllowKids)

	setList(params, "bathroom_amenities", c.BathroomAmenities)
	setList(params, "kitchen_amenities", c.KitchenAmenities)
	setList(params, "entertainment_amenities", c.EntertainmentAmenities)
	setList(params, "heating_amenities", c.HeatingAmenities)
	setList(params, "safety_amenities", c.SafetyAmenities)
	setList(params, "accessibility_amenities", c.AccessibilityAmenities)

	return params
}

func setString(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setFloat(params url.Values, key string, value *float64) {
	if value != nil {
		params.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}

func setInt(params url.Values, key string, value *int) {
	if value != nil {
		params.Set(key, strconv.Itoa(*value))
	}
}

func setBool(params url.Values, key string, value *bool) {
	if value != nil {
		params.Set(key, strconv.FormatBool(*value))
	}
}

func setList(params url.Values, key string, values []string) {
	for _, v := range values {
		if v != "" {
			params.Add(key, v)
		}
	}
}
