// Package marketapi is the REST client for the Skidmo marketplace backend.
// It owns everything wire-shaped: raw record DTOs, normalization into the
// domain view models, filter query building, multipart creation encoding and
// the bearer-token/refresh handshake.
package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"skidmo-client/internal/contextkeys"
	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    port.SessionStorePort
	decoder    port.TokenDecoderPort

	// Serializes the refresh handshake so concurrent 401s trigger one
	// refresh, not a storm.
	refreshMu sync.Mutex
}

func NewClient(baseURL string, session port.SessionStorePort, decoder port.TokenDecoderPort) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
		decoder:    decoder,
	}
}

// doRequest performs one authenticated request. The body is kept as bytes so
// the request can be replayed once after a successful token refresh; a 401 on
// the retry (or with no refresh token available) surfaces ErrSessionExpired.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return nil, fmt.Errorf("marketapi: failed to create request: %w", err)
		}
		req.Header.Set("X-Trace-ID", traceID)
		req.Header.Set("Accept", "application/json")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		token := c.session.Current().AccessToken
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("marketapi: request to %s failed: %w", path, err)
		}

		if resp.StatusCode != http.StatusUnauthorized || token == "" {
			return resp, nil
		}
		resp.Body.Close()

		if attempt > 0 {
			return nil, domain.ErrSessionExpired
		}
		if err := c.refreshSession(ctx); err != nil {
			return nil, err
		}
	}
}

// refreshSession is the single refresh routine: exchange the refresh token
// for a new pair, persist it, or declare the session expired.
func (c *Client) refreshSession(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "MarketAPIClient"})

	current := c.session.Current()
	if current.RefreshToken == "" {
		logger.Warn("Access token rejected and no refresh token available", nil)
		return domain.ErrSessionExpired
	}

	pair, err := c.refreshTokens(ctx, current.RefreshToken)
	if err != nil {
		logger.Error("Token refresh failed", err, nil)
		return fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	}

	claims := current.Claims
	if c.decoder != nil {
		if decoded, err := c.decoder.DecodeClaims(pair.Access); err == nil {
			claims = decoded
		}
	}

	if err := c.session.Save(domain.Session{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		Claims:       claims,
	}); err != nil {
		return fmt.Errorf("marketapi: failed to persist refreshed session: %w", err)
	}

	logger.Info("Session refreshed", nil)
	return nil
}

// getJSON runs a GET and decodes a 2xx response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("marketapi: failed to decode response from %s: %w", path, err)
	}
	return nil
}

// postJSONUnauthenticated runs a JSON POST with no Authorization header and
// outside the 401-refresh loop. Login and refresh use it: a 401 from either
// means the credentials themselves were rejected, and retrying cannot help.
func (c *Client) postJSONUnauthenticated(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marketapi: failed to marshal request body: %w", err)
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+strings.TrimLeft(path, "/"), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("marketapi: failed to create request: %w", err)
	}
	req.Header.Set("X-Trace-ID", traceID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("marketapi: request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("marketapi: failed to decode response from %s: %w", path, err)
	}
	return nil
}

// postJSON runs a JSON POST and decodes a 2xx response into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marketapi: failed to marshal request body: %w", err)
	}
	resp, err := c.doRequest(ctx, http.MethodPost, path, nil, body, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("marketapi: failed to decode response from %s: %w", path, err)
	}
	return nil
}
