package model

type Customer struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Email  string `db:"email" json:"email"` // Natural key for idempotent creation
	Points int    `db:"points" json:"points"`
	Age    *int   `db:"age" json:"age,omitempty"` // Nullable, used by reporting segmentation only
}
