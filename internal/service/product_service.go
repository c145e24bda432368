package service

import (
	"context"

	"tienda-api/internal/domain"
	"tienda-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CreateProductInput carries a new catalog entry. Image defaults to
// "default.jpg" when empty.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Stock       int
	Image       string
	Rating      float64
}

// UpdateProductInput patches an existing product; nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Stock       *int
	Image       *string
	Rating      *float64
}

// ProductService covers the catalog CRUD surface.
type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type productService struct {
	products repository.ProductRepository
}

// NewProductService creates a ProductService over the catalog repository.
func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	return s.products.FindAll(ctx, filter)
}

func (s *productService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if in.Price.IsNegative() {
		return nil, &domain.ValidationError{Message: "price must not be negative"}
	}
	if in.Stock < 0 {
		return nil, &domain.ValidationError{Message: "stock must not be negative"}
	}
	if in.Image == "" {
		in.Image = "default.jpg"
	}

	product := domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		Image:       in.Image,
		Rating:      in.Rating,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *productService) Update(ctx context.Context, id int, in UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, &domain.ValidationError{Message: "price must not be negative"}
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, &domain.ValidationError{Message: "stock must not be negative"}
		}
		product.Stock = *in.Stock
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Rating != nil {
		product.Rating = *in.Rating
	}

	if err := s.products.Update(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}
