package domain

import "reflect"

// RoomCount is the apartment room selector: "STUDIO", "1".."4" or "5+".
type RoomCount string

const RoomCountStudio RoomCount = "STUDIO"

// HouseDetails covers both HOUSE and BOARDING listings; the two differ only
// in the IsBoarding flag and the detail route they share.
type HouseDetails struct {
	IsBoarding    bool       `json:"is_boarding"`
	BedroomCount  int        `json:"bedroom_count"`
	BathroomCount int        `json:"bathroom_count"`
	HasBalcony    bool       `json:"has_balcony"`
	HasPatio      bool       `json:"has_patio"`
	HasPool       bool       `json:"has_pool"`
	Garden        GardenType `json:"garden"`

	Amenities      []Amenity        `json:"amenities,omitempty"`
	Infrastructure []Infrastructure `json:"infrastructure,omitempty"`
}

type ApartmentDetails struct {
	RoomCount     RoomCount  `json:"room_count"`
	BedroomCount  int        `json:"bedroom_count"`
	BathroomCount int        `json:"bathroom_count"`
	HasBalcony    bool       `json:"has_balcony"`
	HasPatio      bool       `json:"has_patio"`
	HasPool       bool       `json:"has_pool"`
	Garden        GardenType `json:"garden"`

	Amenities      []Amenity        `json:"amenities,omitempty"`
	Infrastructure []Infrastructure `json:"infrastructure,omitempty"`
}

type CommercialDetails struct {
	BathroomCount  int              `json:"bathroom_count"`
	HasBalcony     bool             `json:"has_balcony"`
	HasPatio       bool             `json:"has_patio"`
	InUnitLaundry  bool             `json:"in_unit_laundry"`
	Pool           GardenType       `json:"pool"`
	Garden         GardenType       `json:"garden"`
	Amenities      []Amenity        `json:"amenities,omitempty"`
	Infrastructure []Infrastructure `json:"infrastructure,omitempty"`
}

type LodgeHotelDetails struct {
	StarRating *int   `json:"star_rating,omitempty"`
	RoomType   string `json:"room_type"`
	RoomCount  int    `json:"room_count"`
	BedType    string `json:"bed_type"`
	ViewType   string `json:"view_type"`
	MealOption string `json:"meal_option,omitempty"`

	Amenities LodgeAmenities `json:"lodge_amenities"`
}

// LodgeAmenities is the exhaustive set of named boolean amenity flags the
// hotels creation endpoint requires. The backend schema treats every field as
// required, so a creation payload must carry all of them even when false.
type LodgeAmenities struct {
	// Bathroom
	HasPrivateBathroom bool `json:"has_private_bathroom"`
	HasSharedBathroom  bool `json:"has_shared_bathroom"`
	HasHotWater        bool `json:"has_hot_water"`
	HasBathtub         bool `json:"has_bathtub"`
	HasShower          bool `json:"has_shower"`
	HasHairDryer       bool `json:"has_hair_dryer"`
	HasToiletries      bool `json:"has_toiletries"`
	HasTowels          bool `json:"has_towels"`

	// Laundry
	HasWashingMachine bool `json:"has_washing_machine"`
	HasDryer          bool `json:"has_dryer"`
	HasIron           bool `json:"has_iron"`
	HasIroningBoard   bool `json:"has_ironing_board"`
	HasLaundryService bool `json:"has_laundry_service"`

	// Kitchen
	HasKitchen         bool `json:"has_kitchen"`
	HasKitchenette     bool `json:"has_kitchenette"`
	HasRefrigerator    bool `json:"has_refrigerator"`
	HasMicrowave       bool `json:"has_microwave"`
	HasStove           bool `json:"has_stove"`
	HasOven            bool `json:"has_oven"`
	HasCoffeeMaker     bool `json:"has_coffee_maker"`
	HasElectricKettle  bool `json:"has_electric_kettle"`
	HasDiningArea      bool `json:"has_dining_area"`
	HasCookingUtensils bool `json:"has_cooking_utensils"`

	// Entertainment
	HasTV                bool `json:"has_tv"`
	HasCableChannels     bool `json:"has_cable_channels"`
	HasStreamingServices bool `json:"has_streaming_services"`
	HasWifi              bool `json:"has_wifi"`
	HasGameConsole       bool `json:"has_game_console"`
	HasBoardGames        bool `json:"has_board_games"`
	HasBooks             bool `json:"has_books"`
	HasMusicSystem       bool `json:"has_music_system"`

	// Heating and cooling
	HasAirConditioning bool `json:"has_air_conditioning"`
	HasHeating         bool `json:"has_heating"`
	HasCeilingFan      bool `json:"has_ceiling_fan"`
	HasPortableFan     bool `json:"has_portable_fan"`
	HasFireplace       bool `json:"has_fireplace"`

	// Safety
	HasSmokeDetector          bool `json:"has_smoke_detector"`
	HasCarbonMonoxideDetector bool `json:"has_carbon_monoxide_detector"`
	HasFireExtinguisher       bool `json:"has_fire_extinguisher"`
	HasFirstAidKit            bool `json:"has_first_aid_kit"`
	HasSecurityCameras        bool `json:"has_security_cameras"`
	HasSafe                   bool `json:"has_safe"`
	HasSecureParking          bool `json:"has_secure_parking"`

	// Accessibility
	HasWheelchairAccess   bool `json:"has_wheelchair_access"`
	HasElevator           bool `json:"has_elevator"`
	HasGroundFloorAccess  bool `json:"has_ground_floor_access"`
	HasWideDoorways       bool `json:"has_wide_doorways"`
	HasAccessibleBathroom bool `json:"has_accessible_bathroom"`
	HasStepFreeAccess     bool `json:"has_step_free_access"`

	// Hospitality
	HasRoomService       bool `json:"has_room_service"`
	HasDailyHousekeeping bool `json:"has_daily_housekeeping"`
	HasBreakfastIncluded bool `json:"has_breakfast_included"`
	HasAirportShuttle    bool `json:"has_airport_shuttle"`
	HasConcierge         bool `json:"has_concierge"`
	HasLuggageStorage    bool `json:"has_luggage_storage"`
	HasFrontDesk24h      bool `json:"has_front_desk_24h"`
	HasMiniBar           bool `json:"has_mini_bar"`
	HasPoolAccess        bool `json:"has_pool_access"`
	HasGymAccess         bool `json:"has_gym_access"`
	HasSpaServices       bool `json:"has_spa_services"`
}

// Flags returns every amenity as a name -> value pair, keyed by the wire
// field name. The struct tags are the single source of truth, so the payload
// builder and the JSON Schema contract cannot drift apart.
func (a LodgeAmenities) Flags() map[string]bool {
	flags := make(map[string]bool, len(LodgeAmenityFields()))
	v := reflect.ValueOf(a)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		flags[t.Field(i).Tag.Get("json")] = v.Field(i).Bool()
	}
	return flags
}

// WithEnabled returns a copy of a with the named flags switched on. Unknown
// names are ignored.
func (a LodgeAmenities) WithEnabled(names []string) LodgeAmenities {
	enabled := make(map[string]bool, len(names))
	for _, n := range names {
		enabled[n] = true
	}
	v := reflect.ValueOf(&a).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if enabled[t.Field(i).Tag.Get("json")] {
			v.Field(i).SetBool(true)
		}
	}
	return a
}

// LodgeAmenityFields returns the wire names of every lodge amenity flag, in
// struct order.
func LodgeAmenityFields() []string {
	t := reflect.TypeOf(LodgeAmenities{})
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields = append(fields, t.Field(i).Tag.Get("json"))
	}
	return fields
}
