package domain

import "github.com/shopspring/decimal"

type CartItemRequest struct {
	MenuID            string   `json:"menu_id" validate:"required"`
	Quantity          int      `json:"quantity" validate:"required"`
	SpicinessLevel    int      `json:"spiciness_level"`
	RiceAmount        string   `json:"rice_amount"`
	AdditionalOptions []string `json:"additional_options"`
	Comment           string   `json:"comment"`
}

type AddToCartRequest struct {
	TableID string            `json:"table_id" validate:"required"`
	Items   []CartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderRequest struct {
	TableID string            `json:"table_id" validate:"required"`
	Items   []CartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type PaymentRequest struct {
	TableID       string           `json:"table_id" validate:"required"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod PaymentMethod    `json:"payment_method" validate:"required,oneof=CARD CASH MOBILE"`
}

type RatingRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type MenuAvailableRequest struct {
	MenuID   string `json:"menu_id" validate:"required"`
	MenuName string `json:"menu_name" validate:"required"`
}

type AllergiesRequest struct {
	Allergies []string `json:"allergy_ingredients"`
}
