// Package handler exposes fleet storage over HTTP. Uploads are raw CSV
// bodies, matching the tables operators already maintain.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcheck/internal/aircraft"
	"adcheck/pkg/platform/httputil"
	"adcheck/pkg/requestcontext"
)

// Service defines the fleet operations the handler needs.
type Service interface {
	Upload(ctx context.Context, name string, table io.Reader) (*aircraft.Fleet, error)
	Get(ctx context.Context, name string) (*aircraft.Fleet, error)
	List(ctx context.Context) ([]aircraft.Fleet, error)
	Delete(ctx context.Context, name string) error
}

// Handler wires fleet endpoints to the fleet service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a fleet handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts fleet endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Put("/fleets/{name}", h.HandleUpload)
	r.Get("/fleets/{name}", h.HandleGet)
	r.Get("/fleets", h.HandleList)
	r.Delete("/fleets/{name}", h.HandleDelete)
}

// HandleUpload handles PUT /fleets/{name}. The body is the fleet CSV.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	name := chi.URLParam(r, "name")

	fleet, err := h.service.Upload(ctx, name, r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "fleet upload failed",
			"request_id", requestID,
			"name", name,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromFleet(fleet))
}

// HandleGet handles GET /fleets/{name}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	fleet, err := h.service.Get(ctx, name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromFleet(fleet))
}

// HandleList handles GET /fleets.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fleets, err := h.service.List(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	responses := make([]FleetResponse, len(fleets))
	for i := range fleets {
		responses[i] = FromFleet(&fleets[i])
	}
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Fleets: responses})
}

// HandleDelete handles DELETE /fleets/{name}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	if err := h.service.Delete(ctx, name); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
