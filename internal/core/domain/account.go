package domain

import "time"

// User is the marketplace account as the users endpoints return it.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone_number"`
	IsAgent    bool   `json:"is_agent"`
	IsVerified bool   `json:"is_verified"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone_number"`
	IsAgent   bool   `json:"is_agent"`
}

// Reservation is a stay/viewing booking against a listing.
type Reservation struct {
	ID           string       `json:"id"`
	PropertyID   string       `json:"property"`
	PropertyType PropertyType `json:"property_type"`
	CheckIn      time.Time    `json:"check_in"`
	CheckOut     time.Time    `json:"check_out"`
	Guests       int          `json:"guests"`
	Status       string       `json:"status"`
}

// ReservationRequest creates a reservation.
type ReservationRequest struct {
	PropertyID   string       `json:"property"`
	PropertyType PropertyType `json:"property_type"`
	CheckIn      time.Time    `json:"check_in"`
	CheckOut     time.Time    `json:"check_out"`
	Guests       int          `json:"guests"`
}

// MessageThread is one conversation about a listing.
type MessageThread struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property,omitempty"`
	Participants  []string  `json:"participants"`
	LastMessage   string    `json:"last_message,omitempty"`
	LastMessageAt time.Time `json:"last_message_at,omitempty"`
}

// Message is one entry in a thread.
type Message struct {
	ID       string    `json:"id"`
	ThreadID string    `json:"thread"`
	SenderID string    `json:"sender"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
}

// FilterVocabulary is what properties/filter/options/ returns: the selectable
// property types and the amenity names per category bucket.
type FilterVocabulary struct {
	PropertyTypes     []string            `json:"property_types"`
	AmenityCategories map[string][]string `json:"amenity_categories"`
}
