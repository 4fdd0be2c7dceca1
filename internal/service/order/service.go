package order

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cardaris-portal/internal/domain"
	"cardaris-portal/internal/shopify"
)

// French short date formats, matching what the portal frontend renders.
const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04:05"
)

const (
	defaultCurrency    = "EUR"
	defaultDescription = "Commande Cardaris"
	displayIDPrefix    = "#CMD-"
)

// API is the slice of the Shopify client the order service consumes.
type API interface {
	ListOrders(ctx context.Context, q shopify.OrderQuery) ([]shopify.Order, error)
	GetOrder(ctx context.Context, id string) (*shopify.Order, error)
}

// Service maps Shopify orders into portal order views.
type Service struct {
	api    API
	logger *zap.Logger
}

// New creates a Service.
func New(api API, logger *zap.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List returns the customer's orders, newest first, as portal summaries.
func (s *Service) List(ctx context.Context, customerID string) ([]domain.OrderSummary, error) {
	orders, err := s.api.ListOrders(ctx, shopify.OrderQuery{
		CustomerID: customerID,
		Status:     "any",
		SortOrder:  "created_at desc",
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("orders loaded",
		zap.String("customer_id", customerID),
		zap.Int("count", len(orders)),
	)

	summaries := make([]domain.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, toSummary(o))
	}
	return summaries, nil
}

// Get returns the full portal view of one order. The order must belong to the
// requesting customer; a mismatch yields domain.ErrNotOrderOwner and no data.
func (s *Service) Get(ctx context.Context, customerID, orderID string) (*domain.OrderDetail, error) {
	o, err := s.api.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.Customer != nil && strconv.FormatInt(o.Customer.ID, 10) != customerID {
		s.logger.Warn("order access refused for non-owning customer",
			zap.String("customer_id", customerID),
			zap.String("order_id", orderID),
		)
		return nil, domain.ErrNotOrderOwner
	}

	detail := toDetail(*o)
	return &detail, nil
}

func toSummary(o shopify.Order) domain.OrderSummary {
	badge := BadgeFor(o.FulfillmentStatus)

	description := defaultDescription
	if len(o.LineItems) > 0 && o.LineItems[0].Title != "" {
		description = o.LineItems[0].Title
	}

	currency := o.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return domain.OrderSummary{
		ID:             displayIDPrefix + strconv.FormatInt(o.OrderNumber, 10),
		OrderID:        o.ID,
		Date:           o.CreatedAt.Format(dateLayout),
		TotalFormatted: o.TotalPrice + " " + currency,
		Description:    description,
		Status:         badge.Label,
		StatusVariant:  badge.Variant,
		OrderStatusURL: optional(o.OrderStatusURL),
	}
}

func toDetail(o shopify.Order) domain.OrderDetail {
	badge := BadgeFor(o.FulfillmentStatus)

	items := make([]domain.LineItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, domain.LineItem{
			ID:           li.ID,
			Title:        li.Title,
			Quantity:     li.Quantity,
			SKU:          li.SKU,
			VariantTitle: li.VariantTitle,
			Price:        li.Price,
			Total:        lineTotal(li.Price, li.Quantity),
		})
	}

	lines := make([]domain.ShippingLine, 0, len(o.ShippingLines))
	for _, sl := range o.ShippingLines {
		lines = append(lines, domain.ShippingLine{
			Title: sl.Title,
			Price: sl.Price,
			Code:  sl.Code,
		})
	}

	// Only an absent price set becomes null; a present amount passes
	// through verbatim, even when empty.
	var shippingPrice *string
	if o.TotalShippingPriceSet != nil {
		amount := o.TotalShippingPriceSet.ShopMoney.Amount
		shippingPrice = &amount
	}

	var discountCode *string
	if len(o.DiscountCodes) > 0 {
		discountCode = optional(o.DiscountCodes[0].Code)
	}

	return domain.OrderDetail{
		ID:              displayIDPrefix + strconv.FormatInt(o.OrderNumber, 10),
		OrderID:         o.ID,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		DateFormatted:   o.CreatedAt.Format(dateTimeLayout),
		Status:          badge.Label,
		StatusVariant:   badge.Variant,
		FinancialStatus: o.FinancialStatus,
		Currency:        o.Currency,
		SubtotalPrice:   o.SubtotalPrice,
		TotalPrice:      o.TotalPrice,
		ShippingPrice:   shippingPrice,
		DiscountCode:    discountCode,
		LineItems:       items,
		ShippingAddress: flattenAddress(o.ShippingAddress),
		BillingAddress:  flattenAddress(o.BillingAddress),
		ShippingLines:   lines,
		OrderStatusURL:  optional(o.OrderStatusURL),
	}
}

// lineTotal renders unit price x quantity with two decimals. Unparsable
// prices count as zero rather than failing the whole order.
func lineTotal(price string, quantity int64) string {
	unit, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		unit = decimal.Zero
	}
	return unit.Mul(decimal.NewFromInt(quantity)).StringFixed(2)
}

func flattenAddress(a *shopify.Address) *domain.OrderAddress {
	if a == nil {
		return nil
	}
	country := a.Country
	if country == "" {
		country = a.CountryCode
	}
	return &domain.OrderAddress{
		Name:    strings.TrimSpace(a.FirstName + " " + a.LastName),
		Line1:   a.Address1,
		Line2:   a.Address2,
		Zip:     a.Zip,
		City:    a.City,
		Country: country,
		Phone:   a.Phone,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
