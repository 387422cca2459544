package domain

import "fmt"

// PropertySummary is the fixed-shape card model every listing screen renders,
// regardless of which variant endpoint the raw record came from. It is
// rebuilt from raw records on every fetch and never written back.
type PropertySummary struct {
	ID           string
	PropertyType PropertyType
	Image        string
	Price        string
	StarRating   int
	Bedrooms     int
	Bathrooms    int
	Address      string
	Title        string
}

// Defaults used when a raw record is missing the corresponding field.
const (
	DefaultAddress = "Location not specified"
)

// placeholderImages is the fixed pool of bundled card images used when a
// record has no photos or a whole feed fetch fails. Selection is
// deterministic: index mod len(pool).
var placeholderImages = []string{
	"asset://placeholders/property_1.png",
	"asset://placeholders/property_2.png",
	"asset://placeholders/property_3.png",
	"asset://placeholders/property_4.png",
	"asset://placeholders/property_5.png",
}

// PlaceholderImage returns the pool image for a list position.
func PlaceholderImage(index int) string {
	if index < 0 {
		index = -index
	}
	return placeholderImages[index%len(placeholderImages)]
}

// PlaceholderImageCount reports the pool size (exposed for tests and for the
// index-mod-N selection property).
func PlaceholderImageCount() int {
	return len(placeholderImages)
}

// DefaultTitle names an untitled record by its list position, matching the
// "Property 1", "Property 2", ... convention.
func DefaultTitle(index int) string {
	return fmt.Sprintf("Property %d", index+1)
}

// PlaceholderBatch builds n client-generated summaries so a screen always has
// renderable content after a failed feed fetch.
func PlaceholderBatch(n int) []PropertySummary {
	batch := make([]PropertySummary, n)
	for i := range batch {
		batch[i] = PropertySummary{
			ID:      fmt.Sprintf("placeholder-%d", i+1),
			Image:   PlaceholderImage(i),
			Price:   ResolvePrice(PurposeRent, TermLong, FlexFloat{}, FlexFloat{}).Display(),
			Address: DefaultAddress,
			Title:   DefaultTitle(i),
		}
	}
	return batch
}
