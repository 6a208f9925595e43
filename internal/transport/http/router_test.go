package httptransport_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcheck/internal/directive"
	directivehandler "adcheck/internal/directive/handler"
	"adcheck/internal/token"
	tokenhandler "adcheck/internal/token/handler"
	httptransport "adcheck/internal/transport/http"
	"adcheck/pkg/platform/secrets"
)

const signingKey = "test-signing-key"

func newRouter(t *testing.T, health func(ctx context.Context) error) http.Handler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	registry := directive.NewService(directive.NewInMemoryStore(), logger, nil)
	jwtService := token.NewJWTService(signingKey, "test-issuer", "test-audience")

	return httptransport.NewRouter(httptransport.Config{
		Logger: logger,
		Auth:   token.NewJWTServiceAdapter(jwtService),
		Health: health,
		Features: []httptransport.Registrar{
			directivehandler.New(registry, logger),
		},
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestHealthEndpointUnavailable(t *testing.T) {
	router := newRouter(t, func(context.Context) error {
		return errors.New("postgres down")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestMetricsEndpointIsPublic(t *testing.T) {
	router := newRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAPIRequiresBearerToken(t *testing.T) {
	router := newRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/directives", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPIAcceptsValidToken(t *testing.T) {
	router := newRouter(t, nil)
	jwtService := token.NewJWTService(signingKey, "test-issuer", "test-audience")
	bearer, err := jwtService.Issue("test-suite", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/directives", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAPIRejectsTokenSignedWithOtherKey(t *testing.T) {
	router := newRouter(t, nil)
	other := token.NewJWTService("other-key", "test-issuer", "test-audience")
	bearer, err := other.Issue("test-suite", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/directives", nil)
	req.Header.Set("Authorization", "Bearer "+bearer)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPublicRegistrarsBypassAuth(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	jwtService := token.NewJWTService(signingKey, "test-issuer", "test-audience")
	hash, err := secrets.Hash("shared-credential")
	require.NoError(t, err)

	router := httptransport.NewRouter(httptransport.Config{
		Logger: logger,
		Auth:   token.NewJWTServiceAdapter(jwtService),
		Public: []httptransport.Registrar{
			tokenhandler.New(jwtService, hash, time.Hour, logger),
		},
	})

	body := strings.NewReader(`{"subject":"operator-tool","credential":"shared-credential"}`)
	req := httptest.NewRequest(http.MethodPost, "/tokens", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestIncomingRequestIDIsPreserved(t *testing.T) {
	router := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "upstream-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "upstream-id", rr.Header().Get("X-Request-Id"))
}
