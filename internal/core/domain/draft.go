package domain

// ListingDraft is the accumulated creation-form state exactly as the user
// entered it: free-text amounts, "Yes"/"No" selector strings, local file URIs.
// It is validated and converted into a CreationPayload once per publish; the
// payload is write-only and never read back into this shape.
type ListingDraft struct {
	PropertyType PropertyType
	TermCategory TermCategory
	Purpose      Purpose

	Title       string
	Address     string
	Description string

	// Price is the authoritative amount for the draft's purpose; SalePrice
	// is only consulted for RENT_BUY drafts, where both prices are sent.
	Price     string
	SalePrice string

	PriceNegotiable    bool
	YearOfConstruction string

	// Count selectors. Raw selections; the payload builder clamps bedroom
	// and bathroom counts to [1,5].
	Rooms     string
	Bedrooms  string
	Bathrooms string

	// Lodge/hotel selectors.
	RoomType   string
	BedType    string
	ViewType   string
	MealOption string
	StarRating string

	// "Yes"/"No" selector strings.
	Balcony       string
	Patio         string
	Pool          string
	InUnitLaundry string
	Security      string
	PetFriendly   string
	AllowSmoking  string
	AllowKids     string

	Garden     GardenType
	IsBoarding bool

	Amenities      []string
	Infrastructure []string
	LodgeAmenities []string

	PhotoURIs []string
	VideoURIs []string

	OwnerProofURI       string
	AgentCertificateURI string
	IsAgent             bool

	TermsAccepted bool
}
