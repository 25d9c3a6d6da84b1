package order

import "time"

type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Total     string    `json:"total"` // NUMERIC -> string
	CreatedAt time.Time `json:"created_at"`
	Items     []Item    `json:"items"`
	// Customer is only populated on the admin listing.
	Customer *Customer `json:"user,omitempty"`
}

type Item struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	// ProductID is a weak reference into the catalog store; the product
	// may be deleted later, so name and price are snapshotted here.
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateOrderItem is one requested line in an order payload.
type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
}
