package marketapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"skidmo-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestCheckResponsePassesSuccess(t *testing.T) {
	assert.NoError(t, checkResponse(response(200, `{}`)))
	assert.NoError(t, checkResponse(response(204, "")))
}

func TestCheckResponseNotFound(t *testing.T) {
	err := checkResponse(response(404, `{"detail": "Not found."}`))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCheckResponseMessageObject(t *testing.T) {
	err := checkResponse(response(500, `{"message": "Internal failure"}`))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "Internal failure", apiErr.Message)
}

func TestCheckResponseDetailObject(t *testing.T) {
	err := checkResponse(response(401, `{"detail": "Given token not valid for any token type"}`))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Given token not valid for any token type", apiErr.Message)
}

func TestCheckResponseFieldMapBecomesValidationErrors(t *testing.T) {
	body := `{"address": "This field is required.", "rental_price": ["A valid number is required."]}`
	err := checkResponse(response(400, body))

	verrs, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, "This field is required.", verrs["address"])
	assert.Equal(t, "A valid number is required.", verrs["rental_price"])
}

func TestCheckResponsePlainStringBody(t *testing.T) {
	err := checkResponse(response(400, `"Bad request"`))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Bad request", apiErr.Message)
}

func TestCheckResponseEmptyBodyUsesStatusText(t *testing.T) {
	err := checkResponse(response(502, ""))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusText(502), apiErr.Message)
}
