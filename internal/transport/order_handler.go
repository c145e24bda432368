package transport

import (
	"errors"
	"net/http"
	"strconv"

	"tienda-api/internal/domain"
	"tienda-api/internal/middleware"
	"tienda-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderItemRequest is one requested line of a new order. Quantity zero is
// accepted and yields a zero subtotal; negative quantities are rejected.
// ProductID is a pointer so an explicit 0 is distinguishable from an absent
// field: 0 flows through to the catalog lookup and fails there as unknown.
type OrderItemRequest struct {
	ProductID *int `json:"producto_id" validate:"required"`
	Quantity  int  `json:"cantidad" validate:"gte=0"`
}

// CreateOrderRequest is the POST /api/pedidos payload.
type CreateOrderRequest struct {
	Customer        map[string]any     `json:"cliente"`
	Items           []OrderItemRequest `json:"items" validate:"dive"`
	DeliveryAddress map[string]any     `json:"direccion_entrega"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers all order routes.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/pedidos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
	})
}

// Create handles order creation.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]service.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.ItemInput{
			ProductID: *it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	order, err := h.orderService.Create(r.Context(), service.CreateOrderInput{
		Customer:        req.Customer,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		h.respondOrderError(w, err)
		return
	}

	h.logger.Info("Order created", zap.Int("order_id", order.ID), zap.String("total", order.Total.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "order created successfully",
		"pedido":  order,
	})
}

// List handles listing all orders in creation order.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(orders),
		"pedidos": orders,
	})
}

// Get handles fetching a single order by id.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"pedido":  order,
	})
}

func (h *OrderHandler) respondOrderError(w http.ResponseWriter, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		stock      *domain.InsufficientStockError
	)

	switch {
	case errors.As(err, &validation):
		middleware.RespondWithError(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &notFound):
		middleware.RespondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &stock):
		middleware.RespondWithError(w, http.StatusBadRequest, stock.Error())
	default:
		h.logger.Error("Order operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
