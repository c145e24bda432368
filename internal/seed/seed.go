package seed

import (
	"context"

	"tienda-api/internal/domain"
	"tienda-api/internal/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Products returns the sample catalog loaded on first boot.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Laptop Gamer",
			Description: "Laptop para gaming de alta gama",
			Price:       decimal.RequireFromString("1200.00"),
			Category:    "Tecnología",
			Stock:       15,
			Image:       "laptop.jpg",
			Rating:      4.5,
		},
		{
			ID:          2,
			Name:        "Smartphone Android",
			Description: "Teléfono inteligente con Android",
			Price:       decimal.RequireFromString("350.00"),
			Category:    "Tecnología",
			Stock:       30,
			Image:       "smartphone.jpg",
			Rating:      4.2,
		},
		{
			ID:          3,
			Name:        "Auriculares Bluetooth",
			Description: "Auriculares inalámbricos con cancelación de ruido",
			Price:       decimal.RequireFromString("89.99"),
			Category:    "Audio",
			Stock:       50,
			Image:       "auriculares.jpg",
			Rating:      4.7,
		},
		{
			ID:          4,
			Name:        "Camiseta Básica",
			Description: "Camiseta de algodón 100%",
			Price:       decimal.RequireFromString("15.99"),
			Category:    "Ropa",
			Stock:       100,
			Image:       "camiseta.jpg",
			Rating:      4.0,
		},
		{
			ID:          5,
			Name:        "Zapatos Deportivos",
			Description: "Zapatos para running y ejercicio",
			Price:       decimal.RequireFromString("65.50"),
			Category:    "Calzado",
			Stock:       25,
			Image:       "zapatos.jpg",
			Rating:      4.3,
		},
	}
}

// EnsureCatalog writes the sample products when the catalog is empty.
// A catalog with any existing products is left alone.
func EnsureCatalog(ctx context.Context, store storage.RecordStore, logger *zap.Logger) error {
	existing, err := storage.LoadAll[domain.Product](ctx, store, storage.EntityProducts)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	products := Products()
	if err := storage.SaveAll(ctx, store, storage.EntityProducts, products); err != nil {
		return err
	}

	logger.Info("Seeded sample catalog", zap.Int("products", len(products)))
	return nil
}
