package model

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type Staff struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Pin  string `db:"pin" json:"pin"`
	Role string `db:"role" json:"role"`
}
