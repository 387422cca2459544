package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePriceRentLongTerm(t *testing.T) {
	price := ResolvePrice(PurposeRent, TermLong, Float(2500), FlexFloat{})
	assert.Equal(t, "K2500/month", price.Display())
}

func TestResolvePriceRentShortTerm(t *testing.T) {
	price := ResolvePrice(PurposeRent, TermShort, Float(950), FlexFloat{})
	assert.Equal(t, "K950/night", price.Display())
}

func TestResolvePriceBuyHasNoUnit(t *testing.T) {
	price := ResolvePrice(PurposeBuy, TermLong, FlexFloat{}, Float(450000))
	assert.Equal(t, "K450000", price.Display())
	assert.Empty(t, price.Unit)
}

func TestResolvePriceRentBuyCombinesBoth(t *testing.T) {
	price := ResolvePrice(PurposeRentBuy, TermLong, Float(3200.5), Float(450000))
	assert.Equal(t, "K3200.5/month | K450000", price.Display())

	short := ResolvePrice(PurposeRentBuy, TermShort, Float(800), Float(120000))
	assert.Equal(t, "K800/night | K120000", short.Display())
}

func TestResolvePriceMissingDefaultsToZero(t *testing.T) {
	price := ResolvePrice(PurposeRent, TermLong, FlexFloat{}, FlexFloat{})
	assert.Equal(t, "K0/month", price.Display())
}

func TestResolvePriceUnparseableRendersNA(t *testing.T) {
	garbage := FlexFloat{Set: true}
	price := ResolvePrice(PurposeRent, TermLong, garbage, FlexFloat{})
	assert.Equal(t, "N/A/month", price.Display())

	// The N/A marker never carries the currency prefix.
	assert.NotContains(t, price.Amount, CurrencyMarker)
}

func TestResolvePriceUnknownPurposeFallsBackToRentalView(t *testing.T) {
	price := ResolvePrice(Purpose("LEASE_TO_OWN"), TermLong, Float(1500), Float(99999))
	assert.Equal(t, "K1500/month", price.Display())
}

func TestResolvePriceDetailUsesTwoDecimals(t *testing.T) {
	price := ResolvePriceDetail(PurposeRent, TermLong, Float(2500), FlexFloat{})
	assert.Equal(t, "K2500.00/month", price.Display())

	combined := ResolvePriceDetail(PurposeRentBuy, TermLong, Float(3200.5), Float(450000))
	assert.Equal(t, "K3200.50/month | K450000.00", combined.Display())
}
