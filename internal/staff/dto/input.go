package dto

type AddStaffInput struct {
	Name string
	Pin  string
	Role string // Defaults to staff when empty
}
