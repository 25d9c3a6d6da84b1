// Package order assembles and stores orders. Creation snapshots the
// product name and price so later catalog changes never rewrite history.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mcastellanos/storefront/internal/apperr"
	"github.com/mcastellanos/storefront/internal/catalog"
	"github.com/mcastellanos/storefront/internal/logger"
)

type Service struct {
	catalog catalog.Store
	repo    Repository
	log     *logger.Logger
}

func NewService(cat catalog.Store, repo Repository, log *logger.Logger) *Service {
	return &Service{catalog: cat, repo: repo, log: log}
}

// Create resolves every requested product, computes the grand total and
// commits the order in one transaction. The first missing product aborts
// the whole call; nothing is persisted on any failure path.
func (s *Service) Create(ctx context.Context, userID string, reqItems []CreateOrderItem) (*Order, error) {
	if userID == "" {
		return nil, apperr.New(apperr.Unauthorized, "missing user identity")
	}
	if len(reqItems) == 0 {
		return nil, apperr.New(apperr.InvalidArgument, "no items in order")
	}

	orderID := uuid.NewString()
	total := decimal.Zero
	items := make([]Item, 0, len(reqItems))

	for _, it := range reqItems {
		if it.ProductID == "" {
			return nil, apperr.New(apperr.InvalidArgument, "productId is required")
		}
		if it.Quantity < 1 {
			return nil, apperr.Newf(apperr.InvalidArgument, "invalid quantity for product %s", it.ProductID)
		}

		p, err := s.catalog.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, apperr.Newf(apperr.NotFound, "product not found: %s", it.ProductID)
			}
			return nil, apperr.Wrap(apperr.StoreUnavailable, "cannot resolve product", err)
		}

		price := decimal.NewFromFloat(p.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))

		items = append(items, Item{
			ID:              uuid.NewString(),
			OrderID:         orderID,
			ProductID:       p.ID,
			ProductName:     p.Name,
			Quantity:        it.Quantity,
			PriceAtPurchase: price.StringFixed(2),
		})
	}

	o := &Order{
		ID:        orderID,
		UserID:    userID,
		Total:     total.StringFixed(2),
		CreatedAt: time.Now().UTC(),
		Items:     items,
	}
	if err := s.repo.Create(ctx, o, items); err != nil {
		s.log.Error("order insert failed", "order_id", orderID, "err", err)
		return nil, apperr.Wrap(apperr.StoreUnavailable, "error creating order", err)
	}
	s.log.Info("order created", "order_id", orderID, "user_id", userID, "total", o.Total)
	return o, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, "error fetching orders", err)
	}
	return orders, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, "error fetching all orders", err)
	}
	return orders, nil
}
