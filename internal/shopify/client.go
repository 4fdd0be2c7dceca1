package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cardaris-portal/internal/domain"
)

// apiVersion pins the Admin REST API version every request targets.
const apiVersion = "2024-10"

// Config holds the connection settings for one store.
type Config struct {
	StoreDomain string // e.g. "demo.myshopify.com"
	AccessToken string
	BaseURL     string // overrides the derived https://<domain>/admin/api/<version> base; used in tests
	Timeout     time.Duration
}

// Client talks to the Shopify Admin REST API for a single store.
// A client built without domain or token is disabled: every call returns
// domain.ErrNotConfigured without touching the network.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	configured bool
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	base := cfg.BaseURL
	if base == "" && cfg.StoreDomain != "" {
		base = fmt.Sprintf("https://%s/admin/api/%s", cfg.StoreDomain, apiVersion)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		token:      cfg.AccessToken,
		configured: base != "" && cfg.AccessToken != "",
	}
}

// Configured reports whether the client can reach the upstream API.
func (c *Client) Configured() bool {
	return c.configured
}

// OrderQuery filters an order listing.
type OrderQuery struct {
	CustomerID string
	Status     string // e.g. "any"
	SortOrder  string // e.g. "created_at desc"
}

type customerEnvelope struct {
	Customer *Customer `json:"customer"`
}

type ordersEnvelope struct {
	Orders []Order `json:"orders"`
}

type orderEnvelope struct {
	Order *Order `json:"order"`
}

type addressesEnvelope struct {
	Addresses []json.RawMessage `json:"addresses"`
}

// GetCustomer fetches a single customer record.
func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var env customerEnvelope
	if err := c.do(ctx, http.MethodGet, "/customers/"+id+".json", nil, nil, &env); err != nil {
		return nil, err
	}
	if env.Customer == nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("customer %s missing from response", id)}
	}
	return env.Customer, nil
}

// UpdateCustomer writes customer fields and returns the updated record.
func (c *Client) UpdateCustomer(ctx context.Context, id string, upd CustomerUpdate) (*Customer, error) {
	body := map[string]CustomerUpdate{"customer": upd}
	var env customerEnvelope
	if err := c.do(ctx, http.MethodPut, "/customers/"+id+".json", nil, body, &env); err != nil {
		return nil, err
	}
	if env.Customer == nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("customer %s missing from update response", id)}
	}
	return env.Customer, nil
}

// ListOrders fetches orders matching q. Absent orders decode as an empty slice.
func (c *Client) ListOrders(ctx context.Context, q OrderQuery) ([]Order, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.CustomerID != "" {
		params.Set("customer_id", q.CustomerID)
	}
	if q.SortOrder != "" {
		params.Set("order", q.SortOrder)
	}
	var env ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders.json", params, nil, &env); err != nil {
		return nil, err
	}
	return env.Orders, nil
}

// GetOrder fetches a single order by its Shopify id.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders/"+id+".json", nil, nil, &env); err != nil {
		return nil, err
	}
	if env.Order == nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("order %s missing from response", id)}
	}
	return env.Order, nil
}

// ListAddresses fetches a customer's addresses as raw JSON; the portal
// forwards them unmapped.
func (c *Client) ListAddresses(ctx context.Context, customerID string) ([]json.RawMessage, error) {
	var env addressesEnvelope
	if err := c.do(ctx, http.MethodGet, "/customers/"+customerID+"/addresses.json", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Addresses, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if !c.configured {
		return domain.ErrNotConfigured
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.UpstreamError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &domain.UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}
