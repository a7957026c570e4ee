// Package httptransport is the thin HTTP layer. It delegates to the order
// service without embedding business logic so transport concerns stay
// isolated.
package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	pkgerrors "coffeeshop/pkg/errors"
)

// CommonResponse is the envelope every endpoint answers with. Data carries
// either the result view or, on failure, the error message.
type CommonResponse struct {
	Data any `json:"data"`
}

// NewRouter wires the public endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.handleHealth)
	r.Route("/order", func(r chi.Router) {
		r.Post("/", h.handleCreateOrder)
		r.Get("/", h.handleListOrders)
		r.Get("/{id}", h.handleGetOrder)
	})
	return r
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(CommonResponse{Data: data})
}

// writeError centralizes coded error translation to HTTP responses. The
// envelope carries the message; the status comes from the error code.
func writeError(w http.ResponseWriter, err error) {
	respond(w, pkgerrors.ToHTTPStatus(pkgerrors.CodeOf(err)), err.Error())
}
