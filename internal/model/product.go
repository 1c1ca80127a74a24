package model

import "time"

type Product struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	Stock     int       `db:"stock" json:"stock"`
	Category  string    `db:"category" json:"category"`
	Barcode   string    `db:"barcode" json:"barcode"` // Generated at creation, immutable
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
