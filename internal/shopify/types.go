package shopify

import "time"

// Customer mirrors the fields of an Admin API customer record the portal reads.
// Shopify sends null for absent text fields; decoding leaves them empty.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Note      string `json:"note"`
}

// CustomerUpdate is the payload for a customer PUT. Pointer fields marshal
// as JSON null when nil; Note is deliberately a plain string so a cleared
// nickname is sent as "" and not null.
type CustomerUpdate struct {
	ID        string  `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Note      string  `json:"note"`
}

// OrderCustomer is the customer stub embedded in an order.
type OrderCustomer struct {
	ID int64 `json:"id"`
}

// LineItem is one purchased article on an order.
type LineItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Quantity     int64  `json:"quantity"`
	SKU          string `json:"sku"`
	VariantTitle string `json:"variant_title"`
	Price        string `json:"price"`
}

// Address is a shipping or billing address attached to an order.
type Address struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Zip         string `json:"zip"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone"`
}

// ShippingLine is one shipping method entry on an order.
type ShippingLine struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Code  string `json:"code"`
}

// DiscountCode is one applied discount code.
type DiscountCode struct {
	Code string `json:"code"`
}

// Money is an amount within a price set.
type Money struct {
	Amount string `json:"amount"`
}

// PriceSet wraps the shop-currency view of a computed price.
type PriceSet struct {
	ShopMoney Money `json:"shop_money"`
}

// Order mirrors the Admin API order fields the portal reads.
type Order struct {
	ID                    int64          `json:"id"`
	OrderNumber           int64          `json:"order_number"`
	CreatedAt             time.Time      `json:"created_at"`
	Currency              string         `json:"currency"`
	TotalPrice            string         `json:"total_price"`
	SubtotalPrice         string         `json:"subtotal_price"`
	FinancialStatus       string         `json:"financial_status"`
	FulfillmentStatus     string         `json:"fulfillment_status"`
	OrderStatusURL        string         `json:"order_status_url"`
	Customer              *OrderCustomer `json:"customer"`
	LineItems             []LineItem     `json:"line_items"`
	ShippingAddress       *Address       `json:"shipping_address"`
	BillingAddress        *Address       `json:"billing_address"`
	ShippingLines         []ShippingLine `json:"shipping_lines"`
	DiscountCodes         []DiscountCode `json:"discount_codes"`
	TotalShippingPriceSet *PriceSet      `json:"total_shipping_price_set"`
}
