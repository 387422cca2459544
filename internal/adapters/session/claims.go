package session

import (
	"fmt"

	"skidmo-client/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimsDecoder reads the user id and verification status straight out of the
// access token at login time. The signature is deliberately not checked here:
// the client has no signing key, and the backend re-validates every request
// anyway.
type ClaimsDecoder struct{}

func NewClaimsDecoder() *ClaimsDecoder {
	return &ClaimsDecoder{}
}

type accessTokenClaims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
	jwt.RegisteredClaims
}

func (d *ClaimsDecoder) DecodeClaims(token string) (domain.SessionClaims, error) {
	var claims accessTokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return domain.SessionClaims{}, fmt.Errorf("ClaimsDecoder: failed to parse access token: %w", err)
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}

	return domain.SessionClaims{
		UserID:     claims.UserID,
		Email:      claims.Email,
		IsVerified: claims.IsVerified,
	}, nil
}
