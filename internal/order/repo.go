package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create writes the order and all of its items in one transaction. Either
// everything commits or nothing does; a context cancellation mid-way rolls
// the whole order back.
func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, user_id, total, created_at)
    VALUES ($1,$2,$3,$4)
  `, o.ID, o.UserID, o.Total, o.CreatedAt); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price_at_purchase)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, it.ID, o.ID, it.ProductID, it.ProductName, it.Quantity, it.PriceAtPurchase); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	if err := r.db.QueryRow(ctx, `
    SELECT id, user_id, total::text, created_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt); err != nil {
		return nil, ErrNotFound
	}
	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, user_id, total::text, created_at
    FROM orders WHERE user_id=$1
    ORDER BY created_at DESC LIMIT $2 OFFSET $3
  `, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.fillItems(ctx, out)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT o.id, o.user_id, o.total::text, o.created_at, u.id, u.name, u.email
    FROM orders o
    JOIN users u ON u.id = o.user_id
    ORDER BY o.created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		var c Customer
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt, &c.ID, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		o.Customer = &c
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.fillItems(ctx, out)
}

func (r *PGRepo) fillItems(ctx context.Context, orders []Order) ([]Order, error) {
	for i := range orders {
		items, err := r.getItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PGRepo) getItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, product_name, quantity, price_at_purchase::text
    FROM order_items WHERE order_id=$1
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.PriceAtPurchase); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
