package domain

import "time"

// Notifications holds the portal notification preferences. The upstream store
// keeps no such record, so these are static defaults for every customer.
type Notifications struct {
	Orders bool `json:"orders"`
	Promos bool `json:"promos"`
}

// Profile is the portal view of a Shopify customer record.
type Profile struct {
	FullName      string        `json:"fullName"`
	Email         string        `json:"email"`
	Nickname      string        `json:"nickname"`
	Notifications Notifications `json:"notifications"`
	Mode          string        `json:"mode"`
}

// OrderSummary is a single row of the portal order list.
type OrderSummary struct {
	ID             string  `json:"id"`      // display id, "#CMD-<order_number>"
	OrderID        int64   `json:"orderId"` // real Shopify order id
	Date           string  `json:"date"`
	TotalFormatted string  `json:"totalFormatted"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	StatusVariant  string  `json:"statusVariant"`
	OrderStatusURL *string `json:"orderStatusUrl"`
}

// LineItem is one purchased article within an order detail.
type LineItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Quantity     int64  `json:"quantity"`
	SKU          string `json:"sku"`
	VariantTitle string `json:"variantTitle"`
	Price        string `json:"price"`
	Total        string `json:"total"` // unit price x quantity, two decimals
}

// OrderAddress is a flattened shipping or billing address.
type OrderAddress struct {
	Name    string `json:"name"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// ShippingLine is one shipping method entry on an order.
type ShippingLine struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Code  string `json:"code"`
}

// OrderDetail is the full portal view of a single order.
type OrderDetail struct {
	ID              string         `json:"id"`
	OrderID         int64          `json:"orderId"`
	CreatedAt       string         `json:"createdAt"`
	DateFormatted   string         `json:"dateFormatted"`
	Status          string         `json:"status"`
	StatusVariant   string         `json:"statusVariant"`
	FinancialStatus string         `json:"financialStatus"`
	Currency        string         `json:"currency"`
	SubtotalPrice   string         `json:"subtotalPrice"`
	TotalPrice      string         `json:"totalPrice"`
	ShippingPrice   *string        `json:"shippingPrice"`
	DiscountCode    *string        `json:"discountCode"`
	LineItems       []LineItem     `json:"lineItems"`
	ShippingAddress *OrderAddress  `json:"shippingAddress"`
	BillingAddress  *OrderAddress  `json:"billingAddress"`
	ShippingLines   []ShippingLine `json:"shippingLines"`
	OrderStatusURL  *string        `json:"orderStatusUrl"`
}

// Ticket is a support ticket. The ticket feature is a mock-up: nothing is
// stored, so listings are always empty.
type Ticket struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}
