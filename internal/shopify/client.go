package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const apiVersion = "2024-07"

// Client talks to one shop's admin API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(domain, token string) *Client {
	return &Client{
		baseURL: "https://" + domain,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// GetOrderByNumber looks an order up by its customer-facing number
// (the "1001" of "#1001").
func (c *Client) GetOrderByNumber(ctx context.Context, number string) (*Order, error) {
	endpoint := fmt.Sprintf("%s/admin/api/%s/orders.json?%s", c.baseURL, apiVersion, url.Values{
		"name":   {"#" + number},
		"status": {"any"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from shopify", resp.StatusCode)
	}

	var payload struct {
		Orders []Order `json:"orders"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding order response: %w", err)
	}

	// The name filter matches exactly, so anything beyond one hit means the
	// shop reuses order names and we refuse to guess.
	if len(payload.Orders) == 0 {
		return nil, ErrOrderNotFound
	}

	if len(payload.Orders) > 1 {
		return nil, fmt.Errorf("order number %q is ambiguous: %d matches", number, len(payload.Orders))
	}

	return &payload.Orders[0], nil
}
