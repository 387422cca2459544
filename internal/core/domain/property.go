package domain

import "time"

// PropertyType is the closed set of listing variants the marketplace knows
// about. BOARDING is stored as its own type but shares the house detail
// route (see DetailRoute).
type PropertyType string

const (
	TypeHouse      PropertyType = "HOUSE"
	TypeBoarding   PropertyType = "BOARDING"
	TypeApartment  PropertyType = "APARTMENT"
	TypeCommercial PropertyType = "COMMERCIAL"
	TypeLodgeHotel PropertyType = "LODGE_HOTEL"
)

// KnownPropertyTypes lists every variant the payload builder and the routing
// layer switch over.
var KnownPropertyTypes = []PropertyType{
	TypeHouse, TypeBoarding, TypeApartment, TypeCommercial, TypeLodgeHotel,
}

type TermCategory string

const (
	TermShort TermCategory = "SHORT"
	TermLong  TermCategory = "LONG"
)

type Purpose string

const (
	PurposeRent    Purpose = "RENT"
	PurposeBuy     Purpose = "BUY"
	PurposeRentBuy Purpose = "RENT_BUY"
)

type GardenType string

const (
	GardenPrivate GardenType = "PRIVATE"
	GardenCommon  GardenType = "COMMON"
	GardenNone    GardenType = "NO"
)

// PropertyPhoto is owned by its property record. At upload time Image holds a
// local URI; the backend replaces it with a server URL once creation succeeds.
type PropertyPhoto struct {
	Image     string `json:"image"`
	Caption   string `json:"caption,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

type PropertyVideo struct {
	Video   string `json:"video"`
	Caption string `json:"caption,omitempty"`
}

// Amenity and Infrastructure are simple tag records; two entries are the same
// amenity iff their names are equal.
type Amenity struct {
	Name string `json:"name"`
}

type Infrastructure struct {
	Name string `json:"name"`
}

// BaseProperty holds the fields shared by every listing variant.
//
// Exactly one of RentalPrice/SalePrice is authoritative depending on Purpose:
// RENT -> RentalPrice, BUY -> SalePrice, RENT_BUY -> both must be present and
// RentalPrice takes display priority.
type BaseProperty struct {
	ID                 string       `json:"id,omitempty"`
	PropertyType       PropertyType `json:"property_type"`
	TermCategory       TermCategory `json:"term_category"`
	Purpose            Purpose      `json:"purpose"`
	RentalPrice        FlexFloat    `json:"rental_price"`
	SalePrice          FlexFloat    `json:"sale_price"`
	PriceNegotiable    bool         `json:"price_negotiable"`
	Title              string       `json:"title"`
	Address            string       `json:"address"`
	Description        string       `json:"description"`
	YearOfConstruction *int         `json:"year_of_construction,omitempty"`

	Security     bool `json:"security"`
	PetFriendly  bool `json:"pet_friendly"`
	AllowSmoking bool `json:"allow_smoking"`
	AllowKids    bool `json:"allow_kids"`

	Photos []PropertyPhoto `json:"photos"`
	Videos []PropertyVideo `json:"videos,omitempty"`

	OwnerProof       string `json:"owner_proof,omitempty"`
	AgentCertificate string `json:"agent_certificate,omitempty"`
	IsAgent          bool   `json:"is_agent"`

	OwnerID   string     `json:"owner,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Property is one listing: the shared base plus the variant-specific details.
// Details holds one of *HouseDetails, *ApartmentDetails, *CommercialDetails,
// *LodgeHotelDetails, discriminated by General.PropertyType.
type Property struct {
	General BaseProperty
	Details interface{}
}
