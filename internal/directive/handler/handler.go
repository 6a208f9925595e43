package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcheck/internal/directive"
	"adcheck/internal/domain"
	"adcheck/pkg/platform/httputil"
	"adcheck/pkg/requestcontext"
)

// Service defines the registry operations the handler needs.
type Service interface {
	Save(ctx context.Context, label string, d domain.Directive) (*directive.Record, error)
	Get(ctx context.Context, label string) (*directive.Record, error)
	List(ctx context.Context) ([]directive.Record, error)
	Delete(ctx context.Context, label string) error
}

// Handler wires directive registry endpoints to the registry service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a directive handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Put("/directives/{label}", h.HandleSave)
	r.Get("/directives/{label}", h.HandleGet)
	r.Get("/directives", h.HandleList)
	r.Delete("/directives/{label}", h.HandleDelete)
}

// HandleSave handles PUT /directives/{label}.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	label := chi.URLParam(r, "label")

	req, ok := httputil.DecodeAndPrepare[SaveDirectiveRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record, err := h.service.Save(ctx, label, req.Directive)
	if err != nil {
		h.logger.ErrorContext(ctx, "directive save failed",
			"request_id", requestID,
			"label", label,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromRecord(record))
}

// HandleGet handles GET /directives/{label}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	label := chi.URLParam(r, "label")

	record, err := h.service.Get(ctx, label)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecord(record))
}

// HandleList handles GET /directives.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.service.List(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	responses := make([]DirectiveResponse, len(records))
	for i := range records {
		responses[i] = FromRecord(&records[i])
	}
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Directives: responses})
}

// HandleDelete handles DELETE /directives/{label}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	label := chi.URLParam(r, "label")

	if err := h.service.Delete(ctx, label); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
