package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatDecodesNumbersAndStrings(t *testing.T) {
	var doc struct {
		A FlexFloat `json:"a"`
		B FlexFloat `json:"b"`
		C FlexFloat `json:"c"`
		D FlexFloat `json:"d"`
		E FlexFloat `json:"e"`
	}
	raw := `{"a": 2500, "b": "3200.50", "c": "contact agent", "d": null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.True(t, doc.A.Set)
	assert.True(t, doc.A.Valid)
	assert.Equal(t, 2500.0, doc.A.Or(0))

	assert.True(t, doc.B.Valid)
	assert.Equal(t, 3200.50, doc.B.Or(0))

	// Present but unparseable: flagged, never an error.
	assert.True(t, doc.C.Set)
	assert.False(t, doc.C.Valid)

	// Explicit null and missing both read as absent.
	assert.False(t, doc.D.Set)
	assert.False(t, doc.E.Set)
	assert.Equal(t, 7.0, doc.E.Or(7))
}

func TestFlexIntDecodesNumbersAndStrings(t *testing.T) {
	var doc struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
		C FlexInt `json:"c"`
	}
	raw := `{"a": 3, "b": "2", "c": "studio"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, 3, doc.A.Or(0))
	assert.Equal(t, 2, doc.B.Or(0))
	assert.Equal(t, 0, doc.C.Or(0))
}
