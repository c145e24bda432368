package service

import (
	"context"
	"fmt"
	"time"

	"tienda-api/internal/domain"
	"tienda-api/internal/repository"

	"github.com/shopspring/decimal"
)

// ItemInput is one requested line of a new order.
type ItemInput struct {
	ProductID int
	Quantity  int
}

// CreateOrderInput is the boundary payload for order creation. Customer
// and DeliveryAddress are optional free-form objects.
type CreateOrderInput struct {
	Customer        map[string]any
	Items           []ItemInput
	DeliveryAddress map[string]any
}

// OrderService runs the create-order workflow: validate every requested
// item against the catalog, price it in decimal arithmetic, and persist
// the finished order. Validation is strictly eager: the first failing item
// aborts the whole request before anything is written.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type orderService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	now      func() time.Time
}

// NewOrderService creates an OrderService over the catalog and the order
// repository.
func NewOrderService(products repository.ProductRepository, orders repository.OrderRepository) OrderService {
	return &orderService{
		products: products,
		orders:   orders,
		now:      time.Now,
	}
}

func (s *orderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	items := make([]domain.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := s.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}

		// Each line is checked against the stored stock on its own;
		// quantities requested by earlier lines of the same order are not
		// counted against it.
		if product.Stock < it.Quantity {
			return nil, &domain.InsufficientStockError{ProductID: product.ID, Name: product.Name}
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotal)
		items = append(items, domain.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  it.Quantity,
			Subtotal:  subtotal,
		})
	}

	id, err := s.orders.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("assign order id: %w", err)
	}

	order := domain.Order{
		ID:              id,
		Customer:        orEmpty(in.Customer),
		Items:           items,
		Total:           total,
		Status:          domain.OrderStatusPending,
		CreatedAt:       s.now().UTC(),
		DeliveryAddress: orEmpty(in.DeliveryAddress),
	}

	// Stock stays untouched: placing an order neither reserves nor
	// decrements inventory. The catalog keeps the snapshot that was read.
	if err := s.orders.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return &order, nil
}

func (s *orderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
