package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates the Shopify client is missing its domain or token.
	ErrNotConfigured = errors.New("shopify not configured")
	// ErrNoCustomerID indicates no customer identifier could be resolved for the request.
	ErrNoCustomerID = errors.New("no customer id")
	// ErrNotOrderOwner indicates the requested order belongs to another customer.
	ErrNotOrderOwner = errors.New("order does not belong to customer")
)

// UpstreamError carries diagnostics from a failed Shopify Admin API call.
type UpstreamError struct {
	Status int    // HTTP status from upstream, 0 on transport failures
	Body   string // raw upstream response body, may be empty
	Err    error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status != 0 && e.Body != "":
		return fmt.Sprintf("shopify: status %d: %s", e.Status, e.Body)
	case e.Status != 0:
		return fmt.Sprintf("shopify: status %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("shopify: %v", e.Err)
	}
	return "shopify: upstream error"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
