// Package arcgis talks to a hosted feature-service endpoint. The exchange
// format is plain GeoJSON: a push publishes the whole collection as one
// item, a pull fetches the current remote collection. Calls are blocking
// and unretried.
package arcgis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/example/geobridge/internal/core/feature"
	"github.com/example/geobridge/internal/ports/secondary"
)

const defaultTimeout = 30 * time.Second

// Client implements secondary.FeatureService against an HTTP feature
// service.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a feature-service client. An empty token means the
// service is used unauthenticated.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type publishResponse struct {
	ItemID  string `json:"itemId"`
	ItemURL string `json:"itemUrl"`
}

// PushFeatures publishes a collection to the remote service.
func (c *Client) PushFeatures(ctx context.Context, col *feature.Collection) (*secondary.PushResult, error) {
	body, err := json.Marshal(col)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/items", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/geo+json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to publish collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, serviceError("publish", resp)
	}

	var published publishResponse
	if err := json.NewDecoder(resp.Body).Decode(&published); err != nil {
		return nil, fmt.Errorf("failed to decode publish response: %w", err)
	}
	return &secondary.PushResult{
		ItemID:       published.ItemID,
		ItemURL:      published.ItemURL,
		FeatureCount: len(col.Features),
	}, nil
}

// PullFeatures retrieves the current remote collection.
func (c *Client) PullFeatures(ctx context.Context) (*feature.Collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/features", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to pull features: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serviceError("pull", resp)
	}

	var col feature.Collection
	if err := json.NewDecoder(resp.Body).Decode(&col); err != nil {
		return nil, fmt.Errorf("failed to decode remote collection: %w", err)
	}
	return &col, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func serviceError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("feature service %s returned status %d: %s", op, resp.StatusCode, bytes.TrimSpace(body))
}
