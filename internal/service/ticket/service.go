package ticket

import (
	"context"

	"go.uber.org/zap"

	"cardaris-portal/internal/domain"
)

// Service is the support-ticket mock-up. Tickets are acknowledged but never
// stored; listings are always empty regardless of prior creates.
type Service struct {
	logger *zap.Logger
}

// New creates a Service.
func New(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// List returns the (always empty) ticket collection.
func (s *Service) List(_ context.Context) []domain.Ticket {
	return []domain.Ticket{}
}

// Create acknowledges a ticket payload without persisting it.
func (s *Service) Create(_ context.Context, payload map[string]any) {
	s.logger.Debug("ticket received (not persisted)", zap.Any("payload", payload))
}
