package repository

import (
	"context"
	"strings"

	"tienda-api/internal/domain"
	"tienda-api/internal/storage"

	"github.com/shopspring/decimal"
)

// ProductFilter narrows FindAll results. A nil price bound means
// unbounded; an empty category matches everything.
type ProductFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository is the catalog. The order workflow only reads through
// it: order creation never writes stock back.
type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id int) error
}

type productRepository struct {
	store storage.RecordStore
}

// NewProductRepository creates a ProductRepository over a record store.
func NewProductRepository(store storage.RecordStore) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	products, err := storage.LoadAll[domain.Product](ctx, r.store, storage.EntityProducts)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "product", ID: id}
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	products, err := storage.LoadAll[domain.Product](ctx, r.store, storage.EntityProducts)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Create assigns the next free id (max existing + 1, or 1) and appends the
// product to the catalog.
func (r *productRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	products, err := storage.LoadAll[domain.Product](ctx, r.store, storage.EntityProducts)
	if err != nil {
		return domain.Product{}, err
	}

	product.ID = nextID(products, func(p domain.Product) int { return p.ID })
	products = append(products, product)

	if err := storage.SaveAll(ctx, r.store, storage.EntityProducts, products); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product domain.Product) error {
	products, err := storage.LoadAll[domain.Product](ctx, r.store, storage.EntityProducts)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			return storage.SaveAll(ctx, r.store, storage.EntityProducts, products)
		}
	}
	return &domain.NotFoundError{Entity: "product", ID: product.ID}
}

func (r *productRepository) Delete(ctx context.Context, id int) error {
	products, err := storage.LoadAll[domain.Product](ctx, r.store, storage.EntityProducts)
	if err != nil {
		return err
	}

	remaining := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		return &domain.NotFoundError{Entity: "product", ID: id}
	}
	return storage.SaveAll(ctx, r.store, storage.EntityProducts, remaining)
}

// nextID computes max existing id + 1, or 1 for an empty collection.
func nextID[T any](records []T, id func(T) int) int {
	max := 0
	for _, r := range records {
		if v := id(r); v > max {
			max = v
		}
	}
	return max + 1
}
