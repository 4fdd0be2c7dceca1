package address

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// API is the slice of the Shopify client the address service consumes.
type API interface {
	ListAddresses(ctx context.Context, customerID string) ([]json.RawMessage, error)
}

// Service forwards customer addresses. The portal renders the Shopify address
// shape directly, so records pass through unmapped.
type Service struct {
	api    API
	logger *zap.Logger
}

// New creates a Service.
func New(api API, logger *zap.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List returns the customer's addresses verbatim. Never returns nil on
// success so the route always serializes to a JSON array.
func (s *Service) List(ctx context.Context, customerID string) ([]json.RawMessage, error) {
	addresses, err := s.api.ListAddresses(ctx, customerID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("addresses loaded",
		zap.String("customer_id", customerID),
		zap.Int("count", len(addresses)),
	)
	if addresses == nil {
		addresses = []json.RawMessage{}
	}
	return addresses, nil
}
