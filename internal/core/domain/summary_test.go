package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderImageCyclesThroughPool(t *testing.T) {
	n := PlaceholderImageCount()
	assert.Equal(t, 5, n)

	for i := 0; i < 3*n; i++ {
		assert.Equal(t, PlaceholderImage(i%n), PlaceholderImage(i), "index %d", i)
	}
	// Adjacent cards never share an image within one pool cycle.
	assert.NotEqual(t, PlaceholderImage(0), PlaceholderImage(1))
}

func TestDefaultTitleIsOneBased(t *testing.T) {
	assert.Equal(t, "Property 1", DefaultTitle(0))
	assert.Equal(t, "Property 12", DefaultTitle(11))
}

func TestPlaceholderBatch(t *testing.T) {
	batch := PlaceholderBatch(7)
	assert.Len(t, batch, 7)
	for i, s := range batch {
		assert.Equal(t, PlaceholderImage(i), s.Image)
		assert.Equal(t, DefaultAddress, s.Address)
		assert.Equal(t, DefaultTitle(i), s.Title)
		assert.NotEmpty(t, s.Price)
	}
}
