package marketapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"skidmo-client/internal/contracts"
	"skidmo-client/internal/core/domain"
)

// variantResource maps a property type to its REST resource segment.
// BOARDING listings live on the house resource.
func variantResource(t domain.PropertyType) (string, error) {
	switch t {
	case domain.TypeHouse, domain.TypeBoarding:
		return "house", nil
	case domain.TypeApartment:
		return "apartment", nil
	case domain.TypeCommercial:
		return "commercial", nil
	case domain.TypeLodgeHotel:
		return "hotels", nil
	default:
		return "", fmt.Errorf("marketapi: no resource for property type %q", t)
	}
}

// ListByType fetches one variant's listing feed and normalizes it.
func (c *Client) ListByType(ctx context.Context, t domain.PropertyType) ([]domain.PropertySummary, error) {
	resource, err := variantResource(t)
	if err != nil {
		return nil, err
	}

	var records []PropertyRecord
	if err := c.getJSON(ctx, resource+"/", nil, &records); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to list %s: %w", resource, err)
	}
	return summarizeAll(records), nil
}

// Get fetches one full listing record with its variant details.
func (c *Client) Get(ctx context.Context, t domain.PropertyType, id string) (*domain.Property, error) {
	resource, err := variantResource(t)
	if err != nil {
		return nil, err
	}

	var record PropertyRecord
	if err := c.getJSON(ctx, resource+"/"+id+"/", nil, &record); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to fetch %s %s: %w", resource, id, err)
	}
	if record.PropertyType == "" {
		record.PropertyType = string(t)
	}
	return record.toProperty()
}

// Filter runs the combined cross-variant filter endpoint.
func (c *Client) Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.PropertySummary, error) {
	var records []PropertyRecord
	if err := c.getJSON(ctx, "properties/filter/", BuildFilterParams(criteria), &records); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to filter listings: %w", err)
	}
	return summarizeAll(records), nil
}

// Count runs the same filter in count-only mode: one round trip for the whole
// criteria set, not one per filter key.
func (c *Client) Count(ctx context.Context, criteria domain.FilterCriteria) (int, error) {
	params := BuildFilterParams(criteria)
	params.Set("count_only", "true")

	var result struct {
		Count int `json:"count"`
	}
	if err := c.getJSON(ctx, "properties/filter/", params, &result); err != nil {
		return 0, fmt.Errorf("MarketAPIClient: failed to count listings: %w", err)
	}
	return result.Count, nil
}

// FilterOptions fetches the selectable filter vocabulary.
func (c *Client) FilterOptions(ctx context.Context) (*domain.FilterVocabulary, error) {
	var vocab domain.FilterVocabulary
	if err := c.getJSON(ctx, "properties/filter/options/", nil, &vocab); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to fetch filter options: %w", err)
	}
	return &vocab, nil
}

// Create submits a creation payload to the variant's create endpoint. The
// payload is checked against the variant's schema contract before any bytes
// go on the wire.
func (c *Client) Create(ctx context.Context, payload domain.CreationPayload) (*domain.Property, error) {
	resource, err := variantResource(payload.PropertyType)
	if err != nil {
		return nil, err
	}
	if err := contracts.ValidateCreationFields(payload.PropertyType, payload.Fields); err != nil {
		return nil, err
	}

	body, contentType, err := encodeCreationForm(payload)
	if err != nil {
		return nil, err
	}
	return c.submitListing(ctx, http.MethodPost, resource+"/create/", body, contentType, payload.PropertyType)
}

// Update submits changed fields for an existing listing using the same
// multipart encoding as creation.
func (c *Client) Update(ctx context.Context, t domain.PropertyType, id string, payload domain.CreationPayload) (*domain.Property, error) {
	resource, err := variantResource(t)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeCreationForm(payload)
	if err != nil {
		return nil, err
	}
	return c.submitListing(ctx, http.MethodPatch, resource+"/"+id+"/", body, contentType, t)
}

func (c *Client) submitListing(ctx context.Context, method, path string, body []byte, contentType string, t domain.PropertyType) (*domain.Property, error) {
	resp, err := c.doRequest(ctx, method, path, nil, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to read listing response: %w", err)
	}
	var record PropertyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to decode listing response: %w", err)
	}
	if record.PropertyType == "" {
		record.PropertyType = string(t)
	}
	return record.toProperty()
}

// Delete removes one of the caller's own listings.
func (c *Client) Delete(ctx context.Context, t domain.PropertyType, id string) error {
	resource, err := variantResource(t)
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, http.MethodDelete, resource+"/"+id+"/", nil, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("MarketAPIClient: failed to delete %s %s: %w", resource, id, err)
	}
	return nil
}

// MyProperties lists the authenticated user's own listings across every
// variant resource, preserving variant order.
func (c *Client) MyProperties(ctx context.Context) ([]domain.PropertySummary, error) {
	var all []domain.PropertySummary
	for _, resource := range []string{"house", "apartment", "commercial", "hotels"} {
		var records []PropertyRecord
		if err := c.getJSON(ctx, resource+"/my/", url.Values{}, &records); err != nil {
			return nil, fmt.Errorf("MarketAPIClient: failed to list own %s properties: %w", resource, err)
		}
		all = append(all, summarizeAll(records)...)
	}
	return all, nil
}
