package dto

type CreateProductInput struct {
	Name     string
	Price    float64
	Stock    int
	Category string
}
