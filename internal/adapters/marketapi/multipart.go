package marketapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"skidmo-client/internal/core/domain"
)

// fallbackMIMETypes covers the extensions the app actually produces when the
// platform MIME database has no entry.
var fallbackMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".pdf":  "application/pdf",
}

func mimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	if t, ok := fallbackMIMETypes[ext]; ok {
		return t
	}
	return "application/octet-stream"
}

// localPath strips the file:// scheme local pickers prepend.
func localPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

// encodeCreationForm encodes a creation payload as multipart/form-data:
// scalar fields as text parts, structured fields JSON-encoded, files as
// streamed parts with a content type inferred from the extension. Field order
// is deterministic so request encoding is reproducible in tests.
func encodeCreationForm(p domain.CreationPayload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, err := encodeFieldValue(p.Fields[key])
		if err != nil {
			return nil, "", fmt.Errorf("marketapi: failed to encode field %s: %w", key, err)
		}
		if err := w.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("marketapi: failed to write field %s: %w", key, err)
		}
	}

	for i, photo := range p.Photos {
		if err := writeFilePart(w, "photos", photo.URI); err != nil {
			return nil, "", err
		}
		meta := map[string]interface{}{
			"caption":    photo.Caption,
			"is_primary": photo.IsPrimary,
		}
		encoded, _ := json.Marshal(meta)
		if err := w.WriteField("photo_meta_"+strconv.Itoa(i), string(encoded)); err != nil {
			return nil, "", fmt.Errorf("marketapi: failed to write photo metadata: %w", err)
		}
	}

	for _, video := range p.Videos {
		if err := writeFilePart(w, "videos", video.URI); err != nil {
			return nil, "", err
		}
		if err := w.WriteField("video_caption", video.Caption); err != nil {
			return nil, "", fmt.Errorf("marketapi: failed to write video caption: %w", err)
		}
	}

	for _, doc := range p.Documents {
		if err := writeFilePart(w, doc.Field, doc.URI); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("marketapi: failed to finish multipart form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// encodeFieldValue renders one non-file field as form text. Strings pass
// through; everything structured goes through JSON so the backend can decode
// lists and objects from the text part.
func encodeFieldValue(v interface{}) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case int:
		return strconv.Itoa(value), nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

func writeFilePart(w *multipart.Writer, field, uri string) error {
	path := localPath(uri)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("marketapi: failed to read attachment %s: %w", path, err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	header.Set("Content-Type", mimeTypeFor(path))

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("marketapi: failed to create part for %s: %w", field, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("marketapi: failed to write attachment %s: %w", path, err)
	}
	return nil
}
