package marketapi

import (
	"context"
	"fmt"

	"skidmo-client/internal/core/domain"
)

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges credentials for a token pair. Claims decoding and session
// persistence stay with the login use case.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var pair tokenPair
	if err := c.postJSONUnauthenticated(ctx, "users/login/", body, &pair); err != nil {
		return domain.Session{}, fmt.Errorf("MarketAPIClient: login failed: %w", err)
	}
	return domain.Session{AccessToken: pair.Access, RefreshToken: pair.Refresh}, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	var user domain.User
	if err := c.postJSON(ctx, "users/create/", reg, &user); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: registration failed: %w", err)
	}
	return &user, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, "users/me/", nil, &user); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to fetch profile: %w", err)
	}
	return &user, nil
}

// refreshTokens exchanges a refresh token for a new pair. It goes through the
// transport directly rather than doRequest, so a rejected refresh can never
// recurse into another refresh.
func (c *Client) refreshTokens(ctx context.Context, refreshToken string) (tokenPair, error) {
	var pair tokenPair
	if err := c.postJSONUnauthenticated(ctx, "users/refresh/", map[string]string{"refresh": refreshToken}, &pair); err != nil {
		return tokenPair{}, err
	}
	return pair, nil
}
