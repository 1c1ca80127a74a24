package model

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// TimeLayout is the format sale timestamps are persisted in. Keeping them as
// plain UTC text lets SQLite date()/strftime() aggregate them directly.
const TimeLayout = "2006-01-02 15:04:05"

// Sale is one cart line of a committed checkout. Rows of the same cart share
// a commit timestamp and carry the evenly allocated share of the cart's net
// total and discount.
type Sale struct {
	ID            string    `db:"id" json:"id"`
	ProductID     string    `db:"product_id" json:"product_id"`
	Quantity      int       `db:"quantity" json:"quantity"`
	Total         float64   `db:"total" json:"total"`
	Discount      float64   `db:"discount" json:"discount"`
	Date          time.Time `db:"date" json:"date"`
	StaffID       string    `db:"staff_id" json:"staff_id"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	CustomerID    *string   `db:"customer_id" json:"customer_id,omitempty"` // Nullable
}
