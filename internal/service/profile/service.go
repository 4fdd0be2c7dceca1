package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"cardaris-portal/internal/domain"
	"cardaris-portal/internal/shopify"
)

// API is the slice of the Shopify client the profile service consumes.
type API interface {
	GetCustomer(ctx context.Context, id string) (*shopify.Customer, error)
	UpdateCustomer(ctx context.Context, id string, upd shopify.CustomerUpdate) (*shopify.Customer, error)
}

// Service maps Shopify customers into portal profiles.
type Service struct {
	api    API
	logger *zap.Logger
	logPII bool
}

// New creates a Service. logPII gates logging of name/email/note fields;
// when false only the customer id is logged.
func New(api API, logger *zap.Logger, logPII bool) *Service {
	return &Service{api: api, logger: logger, logPII: logPII}
}

// UpdateInput is the portal-shaped update payload. Notifications are accepted
// for forward compatibility but not stored anywhere.
type UpdateInput struct {
	FullName      string                `json:"fullName"`
	Email         string                `json:"email"`
	Nickname      string                `json:"nickname"`
	Notifications *domain.Notifications `json:"notifications"`
}

// Get fetches and maps the customer's profile.
func (s *Service) Get(ctx context.Context, customerID string) (domain.Profile, error) {
	c, err := s.api.GetCustomer(ctx, customerID)
	if err != nil {
		return domain.Profile{}, err
	}

	fields := []zap.Field{zap.String("customer_id", customerID)}
	if s.logPII {
		fields = append(fields,
			zap.String("first_name", c.FirstName),
			zap.String("last_name", c.LastName),
			zap.String("email", c.Email),
			zap.String("note", c.Note),
		)
	}
	s.logger.Debug("profile fetched", fields...)

	return Map(*c), nil
}

// Update writes the portal payload upstream and returns the re-mapped profile.
func (s *Service) Update(ctx context.Context, customerID string, in UpdateInput) (domain.Profile, error) {
	first, last := SplitFullName(in.FullName)

	upd := shopify.CustomerUpdate{
		ID:        customerID,
		FirstName: nullable(first),
		LastName:  nullable(last),
		Email:     nullable(in.Email),
		Note:      in.Nickname, // empty string, never null
	}

	c, err := s.api.UpdateCustomer(ctx, customerID, upd)
	if err != nil {
		return domain.Profile{}, err
	}
	s.logger.Info("profile updated", zap.String("customer_id", customerID))
	return Map(*c), nil
}

// Map converts a Shopify customer record into the portal profile shape.
// Absent names become empty strings, never null. The nickname is sourced
// from the free-text note field on purpose: the store keeps no dedicated
// pseudonym field, so the portal repurposes the annotation.
func Map(c shopify.Customer) domain.Profile {
	return domain.Profile{
		FullName: strings.TrimSpace(c.FirstName + " " + c.LastName),
		Email:    c.Email,
		Nickname: c.Note,
		Notifications: domain.Notifications{
			Orders: true,
			Promos: true,
		},
		Mode: "shopify",
	}
}

// SplitFullName cuts a display name at the first whitespace boundary:
// the first token becomes the first name, the remaining tokens are rejoined
// with single spaces as the last name.
func SplitFullName(full string) (first, last string) {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
