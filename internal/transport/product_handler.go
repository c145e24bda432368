package transport

import (
	"errors"
	"net/http"
	"strconv"

	"tienda-api/internal/domain"
	"tienda-api/internal/middleware"
	"tienda-api/internal/repository"
	"tienda-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateProductRequest is the POST /api/productos payload.
type CreateProductRequest struct {
	Name        string           `json:"nombre" validate:"required"`
	Description string           `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio" validate:"required"`
	Category    string           `json:"categoria" validate:"required"`
	Stock       *int             `json:"stock" validate:"required,gte=0"`
	Image       string           `json:"imagen"`
	Rating      float64          `json:"rating"`
}

// UpdateProductRequest patches a product; absent fields stay as they are.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre"`
	Description *string          `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio"`
	Category    *string          `json:"categoria"`
	Stock       *int             `json:"stock"`
	Image       *string          `json:"imagen"`
	Rating      *float64         `json:"rating"`
}

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/productos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles listing products with optional categoria, min_precio and
// max_precio query filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProductFilter{
		Category: r.URL.Query().Get("categoria"),
	}

	if raw := r.URL.Query().Get("min_precio"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid min_precio")
			return
		}
		filter.MinPrice = &min
	}
	if raw := r.URL.Query().Get("max_precio"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid max_precio")
			return
		}
		filter.MaxPrice = &max
	}

	products, err := h.productService.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"count":     len(products),
		"productos": products,
	})
}

// Get handles fetching a single product by id.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		h.respondProductError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"producto": product,
	})
}

// Create handles adding a product to the catalog.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Stock:       *req.Stock,
		Image:       req.Image,
		Rating:      req.Rating,
	})
	if err != nil {
		h.respondProductError(w, err)
		return
	}

	h.logger.Info("Product created", zap.Int("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "product created successfully",
		"producto": product,
	})
}

// Update handles patching an existing product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Update(r.Context(), id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Rating:      req.Rating,
	})
	if err != nil {
		h.respondProductError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "product updated successfully",
		"producto": product,
	})
}

// Delete handles removing a product from the catalog.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		h.respondProductError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "product deleted successfully",
	})
}

func (h *ProductHandler) respondProductError(w http.ResponseWriter, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		middleware.RespondWithError(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &notFound):
		middleware.RespondWithError(w, http.StatusNotFound, notFound.Error())
	default:
		h.logger.Error("Product operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
