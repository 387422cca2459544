package port

import "skidmo-client/internal/core/domain"

// TokenDecoderPort extracts claims from an access token locally, without a
// server round-trip. The token is not verified client-side; the backend is
// the authority.
type TokenDecoderPort interface {
	DecodeClaims(token string) (domain.SessionClaims, error)
}
