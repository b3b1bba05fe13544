package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/localmart/storefront/internal/entities"
	"github.com/localmart/storefront/internal/pricing"
	"github.com/localmart/storefront/internal/service"
	"github.com/localmart/storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// userIDHeader carries the authenticated user, set by the gateway in
// front of this service.
const userIDHeader = "X-User-ID"

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type OrderService interface {
	PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, userID int64) (entities.Order, error)
	SetStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID, userID int64) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID int64, limit, offset int) ([]entities.OrderSummary, int, error)
	ListOrders(ctx context.Context, status entities.OrderStatus, limit, offset int) ([]entities.OrderSummary, int, error)
	CartQuote(ctx context.Context, userID int64, discount decimal.Decimal) (pricing.Bill, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders", h.ListUserOrders)
	r.Get("/orders/{order_id}", h.GetOrderByID)
	r.Patch("/orders/{order_id}/cancel", h.CancelOrder)
	r.Patch("/orders/{order_id}/status", h.SetStatus)
	r.Get("/checkout/quote", h.CartQuote)
	r.Get("/admin/orders", h.ListOrders)
}

func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PlaceOrder(ctx, PlaceOrderRequestToInput(userID, req))
	if err != nil {
		ordersRejected.Inc()
		h.writeServiceError(ctx, w, err, "failed to place order")
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	limit, offset := h.pagination(r)

	orders, total, err := h.svc.ListUserOrders(ctx, userID, limit, offset)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrderListToJSON(orders, total, limit, offset), http.StatusOK)
}

// ListOrders is the back-office listing, optionally filtered by status.
// The gateway only routes admins here.
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset := h.pagination(r)
	status := entities.OrderStatus(r.URL.Query().Get("status"))

	orders, total, err := h.svc.ListOrders(ctx, status, limit, offset)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrderListToJSON(orders, total, limit, offset), http.StatusOK)
}

func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.CancelOrder(ctx, orderID, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to cancel order")
		return
	}

	ordersCancelled.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.SetStatus(ctx, orderID, entities.OrderStatus(req.Status))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to set order status")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) CartQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	discount := decimal.Zero
	if raw := r.URL.Query().Get("discount"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			utils.WriteError(w, "invalid discount", http.StatusBadRequest)
			return
		}
		discount = d
	}

	bill, err := h.svc.CartQuote(ctx, userID, discount)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to quote cart")
		return
	}

	utils.WriteJSON(w, BillToJSON(bill), http.StatusOK)
}

func (h *HTTPHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get(userIDHeader)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "missing user identity", http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "order_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) pagination(r *http.Request) (limit, offset int) {
	limit = defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= maxListLimit {
			limit = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidPayment),
		errors.Is(err, entities.ErrMissingField),
		errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "insufficient stock", http.StatusConflict)
	case errors.Is(err, entities.ErrNotCancellable):
		utils.WriteError(w, "order cannot be cancelled", http.StatusConflict)
	case errors.Is(err, entities.ErrPricingMismatch):
		utils.WriteError(w, "order total does not match server pricing", http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
