package dto

type GetOrCreateInput struct {
	Name   string
	Email  string
	Points int
	Age    *int // Optional
}
