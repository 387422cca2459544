package stub

// seedRecords returns the initial dataset. The shapes are intentionally
// uneven: prices appear as numbers on some records and strings on others,
// bedroom counts live under both historical field names, and several fields
// are simply absent. Clients must cope; that is the point of the stub.
func seedRecords() []record {
	return []record{
		{
			"id":             "1",
			"property_type":  "HOUSE",
			"purpose":        "RENT",
			"term_category":  "LONG",
			"rental_price":   2500,
			"title":          "Family home in Kabulonga",
			"address":        "12 Sable Road, Kabulonga, Lusaka",
			"description":    "Spacious three bedroom house with a walled yard.",
			"bedroom_count":  3,
			"bathroom_count": 2,
			"has_balcony":    false,
			"has_patio":      true,
			"has_pool":       false,
			"garden":         "PRIVATE",
			"security":       true,
			"pet_friendly":   true,
			"allow_smoking":  false,
			"allow_kids":     true,
			"is_boarding":    false,
			"owner":          "user-2",
			"photos": []record{
				{"image": "https://cdn.example.test/listings/1/front.jpg", "is_primary": true},
			},
			"amenities":      []record{{"name": "Borehole"}, {"name": "Solar geyser"}},
			"infrastructure": []record{{"name": "Tarred road"}},
		},
		{
			// Legacy record: string price, old bedroom field name, no photos,
			// no address.
			"id":                  2,
			"property_type":       "HOUSE",
			"purpose":             "RENT",
			"term_category":       "LONG",
			"rental_price":        "1800",
			"number_of_bedrooms":  "2",
			"number_of_bathrooms": 1,
			"is_boarding":         true,
			"owner":               "user-3",
		},
		{
			"id":             "3",
			"property_type":  "APARTMENT",
			"purpose":        "RENT_BUY",
			"term_category":  "LONG",
			"rental_price":   "3200.50",
			"sale_price":     450000,
			"title":          "Two bed apartment, Rhodes Park",
			"address":        "Plot 7, Omelo Mumba Road, Rhodes Park",
			"room_count":     "2",
			"bedroom_count":  2,
			"bathroom_count": 1,
			"has_balcony":    true,
			"has_pool":       true,
			"garden":         "COMMON",
			"owner":          "user-2",
			"photos": []record{
				{"image": "https://cdn.example.test/listings/3/living.jpg", "is_primary": true},
				{"image": "https://cdn.example.test/listings/3/kitchen.jpg"},
			},
		},
		{
			"id":              "4",
			"property_type":   "COMMERCIAL",
			"purpose":         "BUY",
			"term_category":   "LONG",
			"sale_price":      1250000,
			"title":           "Retail unit on Cairo Road",
			"address":         "Cairo Road, Lusaka CBD",
			"bathroom_count":  1,
			"in_unit_laundry": false,
			"pool":            "NO",
			"garden":          "NO",
			"owner":           "user-3",
		},
		{
			"id":            "5",
			"property_type": "LODGE_HOTEL",
			"purpose":       "RENT",
			"term_category": "SHORT",
			"rental_price":  950,
			"title":         "Riverside Lodge, Livingstone",
			"address":       "Mosi-oa-Tunya Road, Livingstone",
			"star_rating":   "4",
			"room_type":     "DOUBLE",
			"room_count":    12,
			"bed_type":      "QUEEN",
			"view_type":     "RIVER",
			"meal_option":   "BREAKFAST",
			"owner":         "user-2",
			"photos": []record{
				{"image": "https://cdn.example.test/listings/5/deck.jpg", "is_primary": true},
			},
			"lodge_amenities": record{
				"has_wifi":               true,
				"has_private_bathroom":   true,
				"has_hot_water":          true,
				"has_breakfast_included": true,
				"has_pool_access":        true,
				"has_secure_parking":     true,
			},
		},
		{
			// Malformed price on purpose: the client renders N/A, not an error.
			"id":            "6",
			"property_type": "APARTMENT",
			"purpose":       "RENT",
			"term_category": "SHORT",
			"rental_price":  "contact agent",
			"title":         "Serviced studio, Longacres",
			"room_count":    "STUDIO",
			"owner":         "user-3",
		},
	}
}

func seedReservations() []record {
	return []record{
		{
			"id":            "r-1",
			"property":      "5",
			"property_type": "LODGE_HOTEL",
			"check_in":      "2026-09-04T14:00:00Z",
			"check_out":     "2026-09-07T10:00:00Z",
			"guests":        2,
			"status":        "CONFIRMED",
		},
	}
}

func seedThreads() []record {
	return []record{
		{
			"id":              "t-1",
			"property":        "1",
			"participants":    []string{"user-1", "user-2"},
			"last_message":    "Is the house still available?",
			"last_message_at": "2026-08-20T09:15:00Z",
		},
	}
}

func seedMessages() map[string][]record {
	return map[string][]record{
		"t-1": {
			{
				"id":      "m-1",
				"thread":  "t-1",
				"sender":  "user-1",
				"body":    "Is the house still available?",
				"sent_at": "2026-08-20T09:15:00Z",
			},
		},
	}
}
