package stub

import (
	"net/url"
	"strconv"
)

// matchesFilter applies the query parameters the combined filter endpoint
// accepts to one record. Absent parameters never constrain; absent record
// fields fail range constraints rather than matching by accident.
func matchesFilter(rec record, params url.Values) bool {
	if want := params.Get("property_type"); want != "" && rec["property_type"] != want {
		return false
	}
	if want := params.Get("purpose"); want != "" && rec["purpose"] != want {
		return false
	}
	if want := params.Get("term_category"); want != "" && rec["term_category"] != want {
		return false
	}
	if want := params.Get("garden"); want != "" && rec["garden"] != want {
		return false
	}

	price, priceOK := numericField(rec, pricingField(rec))
	if min, ok := floatParam(params, "min_price"); ok && (!priceOK || price < min) {
		return false
	}
	if max, ok := floatParam(params, "max_price"); ok && (!priceOK || price > max) {
		return false
	}

	bedrooms, bedroomsOK := firstNumeric(rec, "bedroom_count", "number_of_bedrooms")
	if min, ok := floatParam(params, "min_bedrooms"); ok && (!bedroomsOK || bedrooms < min) {
		return false
	}
	if max, ok := floatParam(params, "max_bedrooms"); ok && (!bedroomsOK || bedrooms > max) {
		return false
	}

	bathrooms, bathroomsOK := firstNumeric(rec, "bathroom_count", "number_of_bathrooms")
	if min, ok := floatParam(params, "min_bathrooms"); ok && (!bathroomsOK || bathrooms < min) {
		return false
	}
	if max, ok := floatParam(params, "max_bathrooms"); ok && (!bathroomsOK || bathrooms > max) {
		return false
	}

	for _, key := range []string{"price_negotiable", "has_pool", "has_balcony", "security", "pet_friendly", "allow_smoking", "allow_kids"} {
		if want := params.Get(key); want != "" {
			actual, _ := rec[key].(bool)
			if strconv.FormatBool(actual) != want {
				return false
			}
		}
	}

	amenityKeys := []string{
		"bathroom_amenities", "kitchen_amenities", "entertainment_amenities",
		"heating_amenities", "safety_amenities", "accessibility_amenities",
	}
	for _, key := range amenityKeys {
		for _, flag := range params[key] {
			if !lodgeFlagSet(rec, flag) {
				return false
			}
		}
	}

	return true
}

// pricingField picks the price the record is actually offered at.
func pricingField(rec record) string {
	if rec["purpose"] == "BUY" {
		return "sale_price"
	}
	return "rental_price"
}

func numericField(rec record, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func firstNumeric(rec record, keys ...string) (float64, bool) {
	for _, key := range keys {
		if _, present := rec[key]; present {
			return numericField(rec, key)
		}
	}
	return 0, false
}

func lodgeFlagSet(rec record, flag string) bool {
	amenities, ok := rec["lodge_amenities"].(record)
	if !ok {
		if m, isMap := rec["lodge_amenities"].(map[string]interface{}); isMap {
			amenities = record(m)
		} else {
			return false
		}
	}
	value, _ := amenities[flag].(bool)
	return value
}

func floatParam(params url.Values, key string) (float64, bool) {
	raw := params.Get(key)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	return f, err == nil
}
