package domain

// FilterCriteria is the sparse set of user-selected filters. Nil/empty fields
// mean "not filtering on this" and must be omitted from the outgoing query
// entirely, never sent as empty or zero values.
type FilterCriteria struct {
	PropertyType PropertyType
	Purpose      Purpose
	TermCategory TermCategory

	MinPrice *float64
	MaxPrice *float64

	MinBedrooms  *int
	MaxBedrooms  *int
	MinBathrooms *int
	MaxBathrooms *int

	PriceNegotiable *bool
	HasPool         *bool
	HasBalcony      *bool
	Security        *bool
	PetFriendly     *bool
	AllowSmoking    *bool
	AllowKids       *bool

	Garden GardenType

	// Amenity buckets are filterable independently per category.
	BathroomAmenities      []string
	KitchenAmenities       []string
	EntertainmentAmenities []string
	HeatingAmenities       []string
	SafetyAmenities        []string
	AccessibilityAmenities []string
}

// AllAmenities flattens the per-category buckets into one combined list, the
// shape a creation payload's amenities field takes.
func (c FilterCriteria) AllAmenities() []string {
	buckets := [][]string{
		c.BathroomAmenities, c.KitchenAmenities, c.EntertainmentAmenities,
		c.HeatingAmenities, c.SafetyAmenities, c.AccessibilityAmenities,
	}
	var all []string
	for _, b := range buckets {
		all = append(all, b...)
	}
	return all
}

// CountResult is what the live "Show N Listings" affordance renders. Known is
// false after a failed count request: the affordance goes to an
// unknown/disabled state rather than showing a stale or zero count.
type CountResult struct {
	Count int
	Known bool
}
