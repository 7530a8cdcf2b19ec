package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView never carries password or one-time secret material.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ProductCount int       `json:"product_count"`
}

type ProductView struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Images        []string        `json:"images"`
	Stock         int             `json:"stock"`
	CategoryID    uuid.UUID       `json:"category_id"`
	IsActive      bool            `json:"is_active"`
	IsPerishable  bool            `json:"is_perishable"`
	RatingAverage decimal.Decimal `json:"rating_average"`
	RatingCount   int             `json:"rating_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProductPage is one page of a listing. Count is the filtered total.
type ProductPage struct {
	Results  []*ProductView `json:"results"`
	Count    int            `json:"count"`
	Next     *int           `json:"next"`
	Previous *int           `json:"previous"`
}

type SuggestionView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ThumbURL string    `json:"thumb_url"`
}

type RatingAuthorView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type RatingView struct {
	ID        uuid.UUID        `json:"id"`
	Rating    int              `json:"rating"`
	Comment   *string          `json:"comment,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	User      RatingAuthorView `json:"user"`
}

type RatingPage struct {
	Results []*RatingView `json:"results"`
	Count   int           `json:"count"`
}

type FavoriteView struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"product_id"`
	CreatedAt time.Time    `json:"created_at"`
	Product   *ProductView `json:"product"`
}

type CartLineView struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items    []*CartLineView `json:"items"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	TimeFrom  string    `json:"time_from"`
	TimeTo    string    `json:"time_to"`
	Capacity  int       `json:"capacity"`
	Remaining int       `json:"remaining"`
	IsActive  bool      `json:"is_active"`
}

type OrderItemView struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type OrderView struct {
	ID              uuid.UUID        `json:"id"`
	OrderNumber     string           `json:"order_number"`
	UserID          *uuid.UUID       `json:"user_id,omitempty"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerEmail   *string          `json:"customer_email,omitempty"`
	PickupSlotID    uuid.UUID        `json:"pickup_slot_id"`
	Status          string           `json:"status"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	PaymentMethod   string           `json:"payment_method"`
	PaymentProvider string           `json:"payment_provider"`
	TempPickupCode  string           `json:"temp_pickup_code"`
	FinalPickupCode *string          `json:"final_pickup_code,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	ExpiresAt       time.Time        `json:"expires_at"`
	CreatedAt       time.Time        `json:"created_at"`
	Items           []*OrderItemView `json:"items"`
	PickupSlot      *SlotView        `json:"pickup_slot,omitempty"`
}
