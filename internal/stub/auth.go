package stub

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// stubUser is a dev account baked into the stub.
type stubUser struct {
	ID         string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Phone      string
	IsAgent    bool
	IsVerified bool
}

var devUsers = map[string]stubUser{
	"demo@skidmo.test": {
		ID: "user-1", Email: "demo@skidmo.test", Password: "password123",
		FirstName: "Demo", LastName: "Tenant", Phone: "+260971234567",
		IsVerified: true,
	},
	"agent@skidmo.test": {
		ID: "user-2", Email: "agent@skidmo.test", Password: "password123",
		FirstName: "Agent", LastName: "Lister", Phone: "+260977654321",
		IsAgent: true, IsVerified: true,
	},
}

type authority struct {
	secret    []byte
	accessTTL time.Duration
}

func newAuthority(secret string) *authority {
	return &authority{secret: []byte(secret), accessTTL: 15 * time.Minute}
}

func (a *authority) issueTokens(u stubUser) (access, refresh string, err error) {
	now := time.Now()

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         u.ID,
		"user_id":     u.ID,
		"email":       u.Email,
		"is_verified": u.IsVerified,
		"token_use":   "access",
		"iat":         now.Unix(),
		"exp":         now.Add(a.accessTTL).Unix(),
	})
	access, err = accessToken.SignedString(a.secret)
	if err != nil {
		return "", "", fmt.Errorf("stub: failed to sign access token: %w", err)
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       u.ID,
		"token_use": "refresh",
		"iat":       now.Unix(),
		"exp":       now.Add(7 * 24 * time.Hour).Unix(),
	})
	refresh, err = refreshToken.SignedString(a.secret)
	if err != nil {
		return "", "", fmt.Errorf("stub: failed to sign refresh token: %w", err)
	}
	return access, refresh, nil
}

// verify parses and validates a token, checking it is of the expected use
// (access vs refresh).
func (a *authority) verify(tokenString, expectUse string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if use, _ := claims["token_use"].(string); use != expectUse {
		return nil, fmt.Errorf("wrong token use %q", use)
	}
	return claims, nil
}

func userByID(id string) (stubUser, bool) {
	for _, u := range devUsers {
		if u.ID == id {
			return u, true
		}
	}
	return stubUser{}, false
}
