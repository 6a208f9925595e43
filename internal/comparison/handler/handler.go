// Package handler exposes comparison runs over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcheck/internal/comparison"
	"adcheck/pkg/platform/httputil"
	"adcheck/pkg/requestcontext"
)

// Service defines the comparison operation the handler needs.
type Service interface {
	Run(ctx context.Context, req comparison.RunRequest) (*comparison.RunResult, error)
}

// Handler wires the comparison endpoint to the comparison service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a comparison handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts comparison endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/comparisons", h.HandleRun)
}

// HandleRun handles POST /comparisons. The response is the results table,
// as JSON by default or as CSV when the request asks for it.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RunComparisonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Run(ctx, req.ToRunRequest())
	if err != nil {
		h.logger.ErrorContext(ctx, "comparison run failed",
			"request_id", requestID,
			"fleet_name", req.FleetName,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if req.Format == FormatCSV {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("X-Run-Id", result.RunID.String())
		w.WriteHeader(http.StatusOK)
		if err := result.Table.WriteCSV(w); err != nil {
			h.logger.ErrorContext(ctx, "csv response write failed",
				"request_id", requestID,
				"run_id", result.RunID,
				"error", err,
			)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
