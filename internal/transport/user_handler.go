package transport

import (
	"errors"
	"net/http"

	"tienda-api/internal/domain"
	"tienda-api/internal/middleware"
	"tienda-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRequest is the POST /api/usuarios/registro payload.
type RegisterRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required"`
	Name     string         `json:"nombre" validate:"required"`
	Address  map[string]any `json:"direccion"`
}

// LoginRequest is the POST /api/usuarios/login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserHandler handles HTTP requests for user registration and login.
type UserHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// RegisterRoutes registers all user routes.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/usuarios", func(r chi.Router) {
		r.Post("/registro", h.Register)
		r.Post("/login", h.Login)
	})
}

// Register handles user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Registration validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.userService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Address:  req.Address,
	})
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			middleware.RespondWithError(w, http.StatusConflict, conflict.Error())
			return
		}
		h.logger.Error("Registration failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("User registered", zap.Int("user_id", profile.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "user registered successfully",
		"usuario": profile,
	})
}

// Login handles user authentication.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			middleware.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("User logged in", zap.Int("user_id", profile.ID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "login successful",
		"usuario": profile,
	})
}
