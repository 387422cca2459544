package marketapi

import "skidmo-client/internal/core/domain"

// SummarizeRecord normalizes one raw record into the uniform card model.
// index is the record's position in its list; it drives the deterministic
// placeholder image and fallback title selection. Missing or malformed
// fields always degrade to defaults, never to an error: a feed renders every
// record it received.
func SummarizeRecord(rec PropertyRecord, index int) domain.PropertySummary {
	summary := domain.PropertySummary{
		ID:           string(rec.ID),
		PropertyType: domain.PropertyType(rec.PropertyType),
		Image:        domain.PlaceholderImage(index),
		StarRating:   rec.StarRating.Or(0),
		Bedrooms:     rec.bedrooms().Or(0),
		Bathrooms:    rec.bathrooms().Or(0),
		Address:      rec.Address,
		Title:        rec.Title,
	}

	if len(rec.Photos) > 0 && rec.Photos[0].Image != "" {
		summary.Image = rec.Photos[0].Image
	}
	if summary.Address == "" {
		summary.Address = domain.DefaultAddress
	}
	if summary.Title == "" {
		summary.Title = domain.DefaultTitle(index)
	}

	summary.Price = domain.ResolvePrice(
		domain.Purpose(rec.Purpose),
		domain.TermCategory(rec.TermCategory),
		rec.RentalPrice,
		rec.SalePrice,
	).Display()

	return summary
}

// summarizeAll normalizes a whole fetched list in order.
func summarizeAll(records []PropertyRecord) []domain.PropertySummary {
	summaries := make([]domain.PropertySummary, len(records))
	for i, rec := range records {
		summaries[i] = SummarizeRecord(rec, i)
	}
	return summaries
}
