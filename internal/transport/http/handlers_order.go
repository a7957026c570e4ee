package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"coffeeshop/internal/order/contracts"
	pkgerrors "coffeeshop/pkg/errors"
)

// OrderService is the application-layer contract this handler depends on.
type OrderService interface {
	EstablishOrder(ctx context.Context, msg contracts.CreateOrderMsg) (contracts.OrderResult, error)
	GetOrder(ctx context.Context, token string) (contracts.OrderResult, error)
	ListOrders(ctx context.Context, tableNo, status string, pageNo, pageSize int) ([]contracts.OrderResult, error)
}

type Handler struct {
	orders OrderService
}

func NewHandler(orders OrderService) *Handler {
	return &Handler{orders: orders}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreateOrderMsg
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if err := validateCreateOrder(req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.orders.EstablishOrder(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, result)
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, result)
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNo := intParam(q.Get("page"), 1)
	pageSize := intParam(q.Get("size"), 20)

	results, err := h.orders.ListOrders(r.Context(), q.Get("table"), q.Get("status"), pageNo, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, results)
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func validateCreateOrder(req contracts.CreateOrderMsg) error {
	if !govalidator.StringLength(req.TableNo, "1", "16") {
		return pkgerrors.New(pkgerrors.CodeInvalidInput, "tableNumber is required")
	}
	for _, item := range req.Items {
		if !govalidator.StringLength(item.ProductID, "1", "128") {
			return pkgerrors.New(pkgerrors.CodeInvalidInput, "productId is required for every item")
		}
	}
	return nil
}
