package marketapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"skidmo-client/internal/core/domain"
)

// checkResponse turns a non-2xx response into the richest error the body
// allows. The backend uses three conventions: a plain string, an object with
// a message/error/detail field, or a per-field error map; field maps come
// back as domain.ValidationErrors so they merge into the same rendering path
// as local validation.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w (status 404)", domain.ErrNotFound)
	}
	return parseErrorBody(resp.StatusCode, body)
}

func parseErrorBody(status int, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &domain.APIError{StatusCode: status, Message: http.StatusText(status)}
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &payload); err == nil && len(payload) > 0 {
		for _, key := range []string{"message", "error", "detail"} {
			if raw, ok := payload[key]; ok {
				var msg string
				if json.Unmarshal(raw, &msg) == nil && msg != "" {
					return &domain.APIError{StatusCode: status, Message: msg}
				}
			}
		}

		// No recognized message key: try to read it as a field error map.
		verrs := make(domain.ValidationErrors, len(payload))
		for field, raw := range payload {
			var msg string
			if json.Unmarshal(raw, &msg) == nil {
				verrs[field] = msg
				continue
			}
			var msgs []string
			if json.Unmarshal(raw, &msgs) == nil && len(msgs) > 0 {
				verrs[field] = msgs[0]
				continue
			}
			verrs = nil
			break
		}
		if len(verrs) > 0 {
			return verrs
		}
	}

	var plain string
	if json.Unmarshal(trimmed, &plain) == nil {
		return &domain.APIError{StatusCode: status, Message: plain}
	}
	return &domain.APIError{StatusCode: status, Message: string(trimmed)}
}
