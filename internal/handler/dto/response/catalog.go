package response

import (
	"time"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ImageURL     *string   `json:"imageUrl"`
	Description  *string   `json:"description"`
	ProductCount int       `json:"productCount"`
}

type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Price         string    `json:"price"`
	Images        []string  `json:"images"`
	Stock         int       `json:"stock"`
	CategoryID    uuid.UUID `json:"categoryId"`
	IsActive      bool      `json:"isActive"`
	IsPerishable  bool      `json:"isPerishable"`
	RatingAverage string    `json:"ratingAverage"`
	RatingCount   int       `json:"ratingCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ProductPageResponse struct {
	Results  []*ProductResponse `json:"results"`
	Count    int                `json:"count"`
	Next     *int               `json:"next"`
	Previous *int               `json:"previous"`
}

type SuggestionResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ThumbURL string    `json:"thumbUrl"`
}

type RatingAuthorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type RatingResponse struct {
	ID        uuid.UUID            `json:"id"`
	Rating    int                  `json:"rating"`
	Comment   *string              `json:"comment"`
	CreatedAt time.Time            `json:"createdAt"`
	User      RatingAuthorResponse `json:"user"`
}

type RatingPageResponse struct {
	Results []*RatingResponse `json:"results"`
	Count   int               `json:"count"`
}

type FavoriteResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProductID uuid.UUID        `json:"productId"`
	CreatedAt time.Time        `json:"createdAt"`
	Product   *ProductResponse `json:"product"`
}
