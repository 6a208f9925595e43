// Package handler exposes token issuance over HTTP. The endpoint sits
// outside the bearer-protected API group; callers authenticate with the
// shared API credential, of which only the bcrypt hash is configured.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	dErrors "adcheck/pkg/domain-errors"
	"adcheck/pkg/platform/httputil"
	"adcheck/pkg/platform/secrets"
	"adcheck/pkg/requestcontext"
)

// Issuer signs service tokens for a subject.
type Issuer interface {
	Issue(subject string, expiresIn time.Duration) (string, error)
}

// Handler exchanges the shared API credential for a service token.
type Handler struct {
	issuer         Issuer
	credentialHash string
	ttl            time.Duration
	logger         *slog.Logger
}

// New constructs a token handler. credentialHash is the bcrypt hash the
// presented credential must match.
func New(issuer Issuer, credentialHash string, ttl time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		issuer:         issuer,
		credentialHash: credentialHash,
		ttl:            ttl,
		logger:         logger,
	}
}

// Register mounts the token endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/tokens", h.HandleIssue)
}

// IssueTokenRequest is the body of POST /tokens.
type IssueTokenRequest struct {
	Subject    string `json:"subject"`
	Credential string `json:"credential"`
}

// Validate performs structural checks. Credential verification happens in
// the handler so a miss logs as an auth failure, not a bad request.
func (r *IssueTokenRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return dErrors.New(dErrors.CodeValidation, "subject is required")
	}
	if r.Credential == "" {
		return dErrors.New(dErrors.CodeValidation, "credential is required")
	}
	return nil
}

// IssueTokenResponse carries the signed token and its lifetime in seconds.
type IssueTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// HandleIssue handles POST /tokens.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[IssueTokenRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := secrets.Verify(req.Credential, h.credentialHash); err != nil {
		h.logger.WarnContext(ctx, "token issuance refused",
			"request_id", requestID,
			"subject", req.Subject,
		)
		httputil.WriteError(w, err)
		return
	}

	signed, err := h.issuer.Issue(strings.TrimSpace(req.Subject), h.ttl)
	if err != nil {
		h.logger.ErrorContext(ctx, "token signing failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "token issued",
		"request_id", requestID,
		"subject", req.Subject,
	)
	httputil.WriteJSON(w, http.StatusOK, IssueTokenResponse{
		Token:     signed,
		ExpiresIn: int64(h.ttl.Seconds()),
	})
}
