package repository

import (
	"context"

	"tienda-api/internal/domain"
	"tienda-api/internal/storage"
)

// OrderRepository assigns order ids and appends finalized orders to the
// store. Orders are append-only: nothing updates or deletes them.
type OrderRepository interface {
	NextID(ctx context.Context) (int, error)
	Append(ctx context.Context, order domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type orderRepository struct {
	store storage.RecordStore
}

// NewOrderRepository creates an OrderRepository over a record store.
func NewOrderRepository(store storage.RecordStore) OrderRepository {
	return &orderRepository{store: store}
}

// NextID returns max existing order id + 1, or 1 when no orders exist.
func (r *orderRepository) NextID(ctx context.Context) (int, error) {
	orders, err := storage.LoadAll[domain.Order](ctx, r.store, storage.EntityOrders)
	if err != nil {
		return 0, err
	}
	return nextID(orders, func(o domain.Order) int { return o.ID }), nil
}

func (r *orderRepository) Append(ctx context.Context, order domain.Order) error {
	orders, err := storage.LoadAll[domain.Order](ctx, r.store, storage.EntityOrders)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return storage.SaveAll(ctx, r.store, storage.EntityOrders, orders)
}

func (r *orderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	orders, err := storage.LoadAll[domain.Order](ctx, r.store, storage.EntityOrders)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "order", ID: id}
}

// FindAll returns orders in storage order, which is creation order.
func (r *orderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return storage.LoadAll[domain.Order](ctx, r.store, storage.EntityOrders)
}
