package domain

// DetailRoute is the closed set of detail screens a listing card can open.
type DetailRoute string

const (
	RouteHouseDetail      DetailRoute = "house-detail"
	RouteApartmentDetail  DetailRoute = "apartment-detail"
	RouteCommercialDetail DetailRoute = "commercial-detail"
	RouteLodgeHotelDetail DetailRoute = "lodge-hotel-detail"
)

// RouteFor maps a property type to its detail route. BOARDING shares the
// house route while staying a distinct stored type. An unrecognized tag falls
// back to the house route; known reports whether the tag was recognized so
// the caller can log a warning instead of failing hard.
func RouteFor(t PropertyType) (route DetailRoute, known bool) {
	switch t {
	case TypeHouse, TypeBoarding:
		return RouteHouseDetail, true
	case TypeApartment:
		return RouteApartmentDetail, true
	case TypeCommercial:
		return RouteCommercialDetail, true
	case TypeLodgeHotel:
		return RouteLodgeHotelDetail, true
	default:
		return RouteHouseDetail, false
	}
}
