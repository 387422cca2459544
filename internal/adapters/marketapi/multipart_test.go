package marketapi

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"skidmo-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formPart struct {
	formName    string
	fileName    string
	contentType string
	body        string
}

func parseForm(t *testing.T, body []byte, contentType string) []formPart {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	var parts []formPart
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts = append(parts, formPart{
			formName:    part.FormName(),
			fileName:    part.FileName(),
			contentType: part.Header.Get("Content-Type"),
			body:        string(data),
		})
	}
	return parts
}

func findPart(parts []formPart, name string) (formPart, bool) {
	for _, p := range parts {
		if p.formName == name {
			return p, true
		}
	}
	return formPart{}, false
}

func TestEncodeCreationForm(t *testing.T) {
	dir := t.TempDir()
	photoPath := filepath.Join(dir, "front.jpg")
	docPath := filepath.Join(dir, "deed.pdf")
	require.NoError(t, os.WriteFile(photoPath, []byte("jpegdata"), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte("pdfdata"), 0o644))

	payload := domain.CreationPayload{
		PropertyType: domain.TypeHouse,
		Fields: map[string]interface{}{
			"title":         "Family home",
			"rental_price":  2500.0,
			"bedroom_count": 3,
			"is_boarding":   false,
			"amenities":     []domain.Amenity{{Name: "Borehole"}},
		},
		Photos: []domain.PhotoAttachment{
			{URI: "file://" + photoPath, Caption: "Photo 1", IsPrimary: true},
		},
		Documents: []domain.DocumentAttachment{
			{Field: "owner_proof", URI: docPath},
		},
	}

	body, contentType, err := encodeCreationForm(payload)
	require.NoError(t, err)

	parts := parseForm(t, body, contentType)

	title, ok := findPart(parts, "title")
	require.True(t, ok)
	assert.Equal(t, "Family home", title.body)

	price, _ := findPart(parts, "rental_price")
	assert.Equal(t, "2500", price.body)

	bedrooms, _ := findPart(parts, "bedroom_count")
	assert.Equal(t, "3", bedrooms.body)

	boarding, _ := findPart(parts, "is_boarding")
	assert.Equal(t, "false", boarding.body)

	amenities, _ := findPart(parts, "amenities")
	assert.JSONEq(t, `[{"name": "Borehole"}]`, amenities.body)

	photo, ok := findPart(parts, "photos")
	require.True(t, ok)
	assert.Equal(t, "front.jpg", photo.fileName)
	assert.Equal(t, "image/jpeg", photo.contentType)
	assert.Equal(t, "jpegdata", photo.body)

	meta, ok := findPart(parts, "photo_meta_0")
	require.True(t, ok)
	assert.JSONEq(t, `{"caption": "Photo 1", "is_primary": true}`, meta.body)

	doc, ok := findPart(parts, "owner_proof")
	require.True(t, ok)
	assert.Equal(t, "deed.pdf", doc.fileName)
	assert.Equal(t, "application/pdf", doc.contentType)
}

func TestEncodeCreationFormMissingFileFails(t *testing.T) {
	payload := domain.CreationPayload{
		PropertyType: domain.TypeHouse,
		Fields:       map[string]interface{}{"title": "x"},
		Photos:       []domain.PhotoAttachment{{URI: "/nonexistent/photo.jpg"}},
	}
	_, _, err := encodeCreationForm(payload)
	assert.Error(t, err)
}

func TestMimeTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", mimeTypeFor("a.JPG"))
	assert.Equal(t, "video/mp4", mimeTypeFor("/x/walk.mp4"))
	assert.Equal(t, "application/octet-stream", mimeTypeFor("file.weird"))
}
