package catalog

import "time"

type Product struct {
	ID          string    `bson:"_id" json:"id"`
	SKU         string    `bson:"sku" json:"sku"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Stock       int       `bson:"stock" json:"stock"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updated_at"`
}

// Update carries a partial product update; nil fields are left untouched.
type Update struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
}

// Page is one page of listing results plus the filter-wide count.
type Page struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}
