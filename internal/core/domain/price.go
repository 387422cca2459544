package domain

import "strconv"

// CurrencyMarker prefixes every rendered amount (prices are in Kwacha).
const CurrencyMarker = "K"

// ResolvedPrice is the display form of a listing price: the formatted amount
// and the unit suffix that follows it. For RENT_BUY the rental and sale
// components are already combined into Amount and Unit stays empty.
type ResolvedPrice struct {
	Amount string
	Unit   string
}

// Display renders the list-view price string, e.g. "K2500/month".
func (p ResolvedPrice) Display() string {
	return p.Amount + p.Unit
}

// ResolvePrice picks the authoritative price field for the listing's purpose
// and formats it for list views (no forced decimals).
//
// RENT  -> rental price (0 when absent) with "/night" or "/month" by term.
// BUY   -> sale price (0 when absent), no unit suffix.
// RENT_BUY -> "{rental}/unit | {sale}"; each component independently
// defaults to 0 when absent and to "N/A" when present but unparseable.
func ResolvePrice(purpose Purpose, term TermCategory, rental, sale FlexFloat) ResolvedPrice {
	return resolvePrice(purpose, term, rental, sale, -1)
}

// ResolvePriceDetail is ResolvePrice with full precision: detail views render
// amounts with exactly two decimal places.
func ResolvePriceDetail(purpose Purpose, term TermCategory, rental, sale FlexFloat) ResolvedPrice {
	return resolvePrice(purpose, term, rental, sale, 2)
}

func resolvePrice(purpose Purpose, term TermCategory, rental, sale FlexFloat, decimals int) ResolvedPrice {
	unit := "/month"
	if term == TermShort {
		unit = "/night"
	}

	switch purpose {
	case PurposeBuy:
		return ResolvedPrice{Amount: formatAmount(sale, decimals)}
	case PurposeRentBuy:
		combined := formatAmount(rental, decimals) + unit + " | " + formatAmount(sale, decimals)
		return ResolvedPrice{Amount: combined}
	default:
		// RENT, and anything unrecognized degrades to the rental view.
		return ResolvedPrice{Amount: formatAmount(rental, decimals), Unit: unit}
	}
}

// formatAmount renders one price component. Absent -> 0, present but
// unparseable -> "N/A". decimals < 0 means "only as many as needed".
func formatAmount(f FlexFloat, decimals int) string {
	if f.Set && !f.Valid {
		return "N/A"
	}
	v := f.Or(0)
	if decimals < 0 {
		return CurrencyMarker + strconv.FormatFloat(v, 'f', -1, 64)
	}
	return CurrencyMarker + strconv.FormatFloat(v, 'f', decimals, 64)
}
