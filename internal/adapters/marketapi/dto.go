package marketapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"skidmo-client/internal/core/domain"
)

// flexID tolerates both string and numeric record IDs; older records carry
// integer primary keys while newer ones use UUID strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if json.Unmarshal(data, &n) == nil {
		*f = flexID(n.String())
		return nil
	}
	*f = ""
	return nil
}

type photoDTO struct {
	Image     string `json:"image"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"is_primary"`
}

// PropertyRecord is the raw listing record exactly as a variant endpoint
// returns it. Nothing here is trusted: prices may be strings, counts may live
// under either of two historical field names, and whole fields may be absent.
// The raw bytes are retained so detail mapping can decode the variant fields
// in a second pass.
type PropertyRecord struct {
	ID           flexID `json:"id"`
	PropertyType string `json:"property_type"`
	Purpose      string `json:"purpose"`
	TermCategory string `json:"term_category"`

	RentalPrice domain.FlexFloat `json:"rental_price"`
	SalePrice   domain.FlexFloat `json:"sale_price"`

	Title   string `json:"title"`
	Address string `json:"address"`

	StarRating domain.FlexInt `json:"star_rating"`

	// Bedroom/bathroom counts appear under either name depending on the
	// endpoint generation.
	BedroomCount      domain.FlexInt `json:"bedroom_count"`
	NumberOfBedrooms  domain.FlexInt `json:"number_of_bedrooms"`
	BathroomCount     domain.FlexInt `json:"bathroom_count"`
	NumberOfBathrooms domain.FlexInt `json:"number_of_bathrooms"`

	Photos []photoDTO `json:"photos"`

	raw json.RawMessage
}

func (r *PropertyRecord) UnmarshalJSON(data []byte) error {
	type alias PropertyRecord
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = PropertyRecord(a)
	r.raw = append([]byte(nil), data...)
	return nil
}

func (r PropertyRecord) bedrooms() domain.FlexInt {
	if r.BedroomCount.Set {
		return r.BedroomCount
	}
	return r.NumberOfBedrooms
}

func (r PropertyRecord) bathrooms() domain.FlexInt {
	if r.BathroomCount.Set {
		return r.BathroomCount
	}
	return r.NumberOfBathrooms
}

// toProperty maps the raw record into the full domain listing. The base
// fields decode through BaseProperty directly (its flex price fields absorb
// the wire variance); the variant details decode from the retained raw bytes.
func (r PropertyRecord) toProperty() (*domain.Property, error) {
	var base struct {
		domain.BaseProperty
		ID flexID `json:"id"`
	}
	if err := json.Unmarshal(r.raw, &base); err != nil {
		return nil, fmt.Errorf("marketapi: failed to decode listing record: %w", err)
	}
	base.BaseProperty.ID = string(base.ID)

	details, err := r.toDetails()
	if err != nil {
		return nil, err
	}

	return &domain.Property{General: base.BaseProperty, Details: details}, nil
}

func (r PropertyRecord) toDetails() (interface{}, error) {
	switch domain.PropertyType(r.PropertyType) {
	case domain.TypeHouse, domain.TypeBoarding:
		var dto struct {
			IsBoarding     bool                    `json:"is_boarding"`
			HasBalcony     bool                    `json:"has_balcony"`
			HasPatio       bool                    `json:"has_patio"`
			HasPool        bool                    `json:"has_pool"`
			Garden         domain.GardenType       `json:"garden"`
			Amenities      []domain.Amenity        `json:"amenities"`
			Infrastructure []domain.Infrastructure `json:"infrastructure"`
		}
		if err := json.Unmarshal(r.raw, &dto); err != nil {
			return nil, fmt.Errorf("marketapi: failed to decode house details: %w", err)
		}
		return &domain.HouseDetails{
			IsBoarding:     dto.IsBoarding || domain.PropertyType(r.PropertyType) == domain.TypeBoarding,
			BedroomCount:   r.bedrooms().Or(0),
			BathroomCount:  r.bathrooms().Or(0),
			HasBalcony:     dto.HasBalcony,
			HasPatio:       dto.HasPatio,
			HasPool:        dto.HasPool,
			Garden:         dto.Garden,
			Amenities:      dto.Amenities,
			Infrastructure: dto.Infrastructure,
		}, nil

	case domain.TypeApartment:
		var dto struct {
			RoomCount      domain.RoomCount        `json:"room_count"`
			HasBalcony     bool                    `json:"has_balcony"`
			HasPatio       bool                    `json:"has_patio"`
			HasPool        bool                    `json:"has_pool"`
			Garden         domain.GardenType       `json:"garden"`
			Amenities      []domain.Amenity        `json:"amenities"`
			Infrastructure []domain.Infrastructure `json:"infrastructure"`
		}
		if err := json.Unmarshal(r.raw, &dto); err != nil {
			return nil, fmt.Errorf("marketapi: failed to decode apartment details: %w", err)
		}
		return &domain.ApartmentDetails{
			RoomCount:      dto.RoomCount,
			BedroomCount:   r.bedrooms().Or(0),
			BathroomCount:  r.bathrooms().Or(0),
			HasBalcony:     dto.HasBalcony,
			HasPatio:       dto.HasPatio,
			HasPool:        dto.HasPool,
			Garden:         dto.Garden,
			Amenities:      dto.Amenities,
			Infrastructure: dto.Infrastructure,
		}, nil

	case domain.TypeCommercial:
		var dto struct {
			HasBalcony     bool                    `json:"has_balcony"`
			HasPatio       bool                    `json:"has_patio"`
			InUnitLaundry  bool                    `json:"in_unit_laundry"`
			Pool           domain.GardenType       `json:"pool"`
			Garden         domain.GardenType       `json:"garden"`
			Amenities      []domain.Amenity        `json:"amenities"`
			Infrastructure []domain.Infrastructure `json:"infrastructure"`
		}
		if err := json.Unmarshal(r.raw, &dto); err != nil {
			return nil, fmt.Errorf("marketapi: failed to decode commercial details: %w", err)
		}
		return &domain.CommercialDetails{
			BathroomCount:  r.bathrooms().Or(0),
			HasBalcony:     dto.HasBalcony,
			HasPatio:       dto.HasPatio,
			InUnitLaundry:  dto.InUnitLaundry,
			Pool:           dto.Pool,
			Garden:         dto.Garden,
			Amenities:      dto.Amenities,
			Infrastructure: dto.Infrastructure,
		}, nil

	case domain.TypeLodgeHotel:
		var dto struct {
			RoomType   string                `json:"room_type"`
			RoomCount  domain.FlexInt        `json:"room_count"`
			BedType    string                `json:"bed_type"`
			ViewType   string                `json:"view_type"`
			MealOption string                `json:"meal_option"`
			Amenities  domain.LodgeAmenities `json:"lodge_amenities"`
		}
		if err := json.Unmarshal(r.raw, &dto); err != nil {
			return nil, fmt.Errorf("marketapi: failed to decode lodge details: %w", err)
		}
		details := &domain.LodgeHotelDetails{
			RoomType:   dto.RoomType,
			RoomCount:  dto.RoomCount.Or(0),
			BedType:    dto.BedType,
			ViewType:   dto.ViewType,
			MealOption: dto.MealOption,
			Amenities:  dto.Amenities,
		}
		if r.StarRating.Set {
			rating := r.StarRating.Or(0)
			details.StarRating = &rating
		}
		return details, nil

	default:
		return nil, fmt.Errorf("marketapi: unknown property type %q in record %s", r.PropertyType, r.ID)
	}
}
