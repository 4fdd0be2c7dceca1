package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardaris-portal/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := New(Config{AccessToken: "shpat_test", BaseURL: srv.URL})
	return client, srv
}

func TestClient_NotConfiguredFailsFast(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL}) // no token

	if client.Configured() {
		t.Fatalf("expected client to report unconfigured")
	}
	_, err := client.GetCustomer(context.Background(), "1")
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no network call, got %d", calls)
	}
}

func TestClient_GetCustomer(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers/42.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Shopify-Access-Token"); got != "shpat_test" {
			t.Errorf("missing access token header, got %q", got)
		}
		io.WriteString(w, `{"customer":{"id":42,"first_name":"Jean","last_name":"Dupont","email":"jean@example.com","note":"JD"}}`)
	})

	c, err := client.GetCustomer(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 42 || c.FirstName != "Jean" || c.Note != "JD" {
		t.Fatalf("unexpected customer: %+v", c)
	}
}

func TestClient_GetCustomer_NullFieldsDecodeEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"customer":{"id":7,"first_name":null,"last_name":null,"email":null,"note":null}}`)
	})

	c, err := client.GetCustomer(context.Background(), "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.FirstName != "" || c.LastName != "" || c.Email != "" || c.Note != "" {
		t.Fatalf("expected empty strings for null fields, got %+v", c)
	}
}

func TestClient_UpdateCustomer_SendsNullsAndEmptyNote(t *testing.T) {
	var sent map[string]map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Errorf("decode body: %v", err)
		}
		io.WriteString(w, `{"customer":{"id":42,"first_name":"Jean","email":"jean@example.com"}}`)
	})

	first := "Jean"
	_, err := client.UpdateCustomer(context.Background(), "42", CustomerUpdate{
		ID:        "42",
		FirstName: &first,
		LastName:  nil,
		Email:     nil,
		Note:      "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := sent["customer"]
	if payload["first_name"] != "Jean" {
		t.Fatalf("expected first_name Jean, got %v", payload["first_name"])
	}
	if v, ok := payload["last_name"]; !ok || v != nil {
		t.Fatalf("expected explicit null last_name, got %v (present=%v)", v, ok)
	}
	if v, ok := payload["note"]; !ok || v != "" {
		t.Fatalf("expected empty-string note, got %v (present=%v)", v, ok)
	}
}

func TestClient_ListOrders_QueryParams(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("status") != "any" || q.Get("customer_id") != "42" || q.Get("order") != "created_at desc" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		io.WriteString(w, `{"orders":[{"id":1,"order_number":1042}]}`)
	})

	orders, err := client.ListOrders(context.Background(), OrderQuery{
		CustomerID: "42",
		Status:     "any",
		SortOrder:  "created_at desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderNumber != 1042 {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestClient_ListAddresses_Passthrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers/42/addresses.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"addresses":[{"id":1,"zip":"75001","custom_field":"kept"}]}`)
	})

	addrs, err := client.ListAddresses(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addrs) != 1 {
		t.Fatalf("expected 1 address, got %d", len(addrs))
	}
	var decoded map[string]any
	if err := json.Unmarshal(addrs[0], &decoded); err != nil {
		t.Fatalf("raw address not valid JSON: %v", err)
	}
	if decoded["custom_field"] != "kept" {
		t.Fatalf("expected unmapped fields preserved, got %v", decoded)
	}
}

func TestClient_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"errors":"Not Found"}`)
	})

	_, err := client.GetOrder(context.Background(), "9")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", upstream.Status)
	}
	if upstream.Body != `{"errors":"Not Found"}` {
		t.Fatalf("expected body surfaced, got %q", upstream.Body)
	}
}

func TestClient_MalformedBodyIsUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"order":`)
	})

	_, err := client.GetOrder(context.Background(), "9")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError for malformed body, got %v", err)
	}
}
