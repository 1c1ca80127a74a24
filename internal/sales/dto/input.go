package dto

import "time"

// CartLine is one (product, quantity, unit price) tuple of a checkout. The
// unit price is captured at add-to-cart time, not re-read at commit.
type CartLine struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

type CheckoutInput struct {
	Lines         []CartLine
	StaffID       string
	PaymentMethod string
	CustomerID    *string // Optional
	Discount      float64 // Cart-level amount, not per line
}

type CheckoutResult struct {
	NetTotal    float64
	CommittedAt time.Time
}

// Receipt is the committed cart snapshot handed to the receipt collaborator.
type Receipt struct {
	Lines         []CartLine
	CartTotal     float64
	Discount      float64
	NetTotal      float64
	StaffID       string
	CustomerID    *string
	PaymentMethod string
	CommittedAt   time.Time
}
