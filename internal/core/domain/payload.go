package domain

import (
	"fmt"
	"strconv"
)

// Bedroom/bathroom selections are clamped to this closed range whatever the
// raw selection implies.
const (
	MinRoomCount = 1
	MaxRoomCount = 5
)

// Attachment is one file the creation request uploads: a local URI plus the
// descriptor metadata the backend stores alongside the served file.
type PhotoAttachment struct {
	URI       string
	Caption   string
	IsPrimary bool
}

type VideoAttachment struct {
	URI     string
	Caption string
}

type DocumentAttachment struct {
	// Field is the multipart part name the document travels under
	// (owner_proof or agent_certificate).
	Field string
	URI   string
}

// CreationPayload is the variant-specific shape a create endpoint expects.
// Fields holds every non-file value keyed by wire name; the attachments are
// uploaded as multipart file parts.
type CreationPayload struct {
	PropertyType PropertyType
	Fields       map[string]interface{}
	Photos       []PhotoAttachment
	Videos       []VideoAttachment
	Documents    []DocumentAttachment
}

// BuildCreationPayload assembles the typed payload for an already-validated
// draft. One builder serves every variant and both term categories; the
// variant switch below is exhaustive over the closed property-type set and
// rejects anything else instead of guessing a default shape.
func BuildCreationPayload(d ListingDraft) (CreationPayload, error) {
	fields := map[string]interface{}{
		"property_type":    string(d.PropertyType),
		"term_category":    string(d.TermCategory),
		"purpose":          string(d.Purpose),
		"title":            d.Title,
		"address":          d.Address,
		"description":      d.Description,
		"price_negotiable": d.PriceNegotiable,
		"security":         yesNo(d.Security),
		"pet_friendly":     yesNo(d.PetFriendly),
		"allow_smoking":    yesNo(d.AllowSmoking),
		"allow_kids":       yesNo(d.AllowKids),
		"is_agent":         d.IsAgent,
	}

	price, _ := strconv.ParseFloat(d.Price, 64)
	switch d.Purpose {
	case PurposeBuy:
		fields["sale_price"] = price
	case PurposeRentBuy:
		fields["rental_price"] = price
		if sale, err := strconv.ParseFloat(d.SalePrice, 64); err == nil {
			fields["sale_price"] = sale
		}
	default:
		fields["rental_price"] = price
	}

	if year, err := strconv.Atoi(d.YearOfConstruction); err == nil {
		fields["year_of_construction"] = year
	}

	switch d.PropertyType {
	case TypeHouse, TypeBoarding:
		fields["is_boarding"] = d.PropertyType == TypeBoarding || d.IsBoarding
		fields["bedroom_count"] = ClampRoomCount(d.Bedrooms)
		fields["bathroom_count"] = ClampRoomCount(d.Bathrooms)
		fields["has_balcony"] = yesNo(d.Balcony)
		fields["has_patio"] = yesNo(d.Patio)
		fields["has_pool"] = yesNo(d.Pool)
		fields["garden"] = gardenOrDefault(d.Garden)
		fields["amenities"] = amenityTuples(d.Amenities)
		fields["infrastructure"] = infrastructureTuples(d.Infrastructure)

	case TypeApartment:
		fields["room_count"] = d.Rooms
		fields["bedroom_count"] = ClampRoomCount(d.Bedrooms)
		fields["bathroom_count"] = ClampRoomCount(d.Bathrooms)
		fields["has_balcony"] = yesNo(d.Balcony)
		fields["has_patio"] = yesNo(d.Patio)
		fields["has_pool"] = yesNo(d.Pool)
		fields["garden"] = gardenOrDefault(d.Garden)
		fields["amenities"] = amenityTuples(d.Amenities)
		fields["infrastructure"] = infrastructureTuples(d.Infrastructure)

	case TypeCommercial:
		fields["bathroom_count"] = ClampRoomCount(d.Bathrooms)
		fields["has_balcony"] = yesNo(d.Balcony)
		fields["has_patio"] = yesNo(d.Patio)
		fields["in_unit_laundry"] = yesNo(d.InUnitLaundry)
		fields["pool"] = gardenOrDefault(GardenType(d.Pool))
		fields["garden"] = gardenOrDefault(d.Garden)
		fields["amenities"] = amenityTuples(d.Amenities)
		fields["infrastructure"] = infrastructureTuples(d.Infrastructure)

	case TypeLodgeHotel:
		fields["room_type"] = d.RoomType
		fields["bed_type"] = d.BedType
		fields["view_type"] = d.ViewType
		fields["room_count"] = lodgeRoomCount(d.Rooms)
		fields["bathroom_count"] = ClampRoomCount(d.Bathrooms)
		if d.MealOption != "" {
			fields["meal_option"] = d.MealOption
		}
		if stars, err := strconv.Atoi(d.StarRating); err == nil {
			fields["star_rating"] = stars
		}
		// The hotels endpoint requires every amenity flag to be present,
		// defaulted false; the selected names switch theirs on.
		amenityFlags := LodgeAmenities{}
		for name, value := range amenityFlags.WithEnabled(d.LodgeAmenities).Flags() {
			fields[name] = value
		}

	default:
		return CreationPayload{}, fmt.Errorf("BuildCreationPayload: unknown property type %q", d.PropertyType)
	}

	payload := CreationPayload{
		PropertyType: d.PropertyType,
		Fields:       fields,
	}

	for i, uri := range d.PhotoURIs {
		payload.Photos = append(payload.Photos, PhotoAttachment{
			URI:       uri,
			Caption:   fmt.Sprintf("Photo %d", i+1),
			IsPrimary: i == 0,
		})
	}
	if len(d.VideoURIs) > 0 {
		payload.Videos = []VideoAttachment{{URI: d.VideoURIs[0], Caption: "Property walkthrough"}}
	}
	if d.OwnerProofURI != "" {
		payload.Documents = append(payload.Documents, DocumentAttachment{Field: "owner_proof", URI: d.OwnerProofURI})
	}
	if d.AgentCertificateURI != "" {
		payload.Documents = append(payload.Documents, DocumentAttachment{Field: "agent_certificate", URI: d.AgentCertificateURI})
	}

	return payload, nil
}

// ClampRoomCount parses a raw count selection and clamps it to [1,5].
// Non-numeric or sub-range input clamps to 1, over-range to 5.
func ClampRoomCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinRoomCount {
		return MinRoomCount
	}
	if n > MaxRoomCount {
		return MaxRoomCount
	}
	return n
}

// lodgeRoomCount parses a lodge/hotel room total. Unlike bedroom and
// bathroom selections it has no upper cap; only the floor of 1 applies.
func lodgeRoomCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinRoomCount {
		return MinRoomCount
	}
	return n
}

// yesNo converts a "Yes"/"No" selector string to its boolean.
func yesNo(s string) bool {
	return s == "Yes"
}

func gardenOrDefault(g GardenType) string {
	if g == "" {
		return string(GardenNone)
	}
	return string(g)
}

func amenityTuples(names []string) []Amenity {
	tuples := make([]Amenity, 0, len(names))
	for _, n := range names {
		tuples = append(tuples, Amenity{Name: n})
	}
	return tuples
}

func infrastructureTuples(names []string) []Infrastructure {
	tuples := make([]Infrastructure, 0, len(names))
	for _, n := range names {
		tuples = append(tuples, Infrastructure{Name: n})
	}
	return tuples
}
