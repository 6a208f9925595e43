package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "adcheck/pkg/domain-errors"
)

var jwtService = NewJWTService(
	"test-signing-key",
	"test-issuer",
	"test-audience",
)

const subject = "extraction-pipeline"

func Test_IssueAndValidate(t *testing.T) {
	token, err := jwtService.Issue(subject, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func Test_Validate_InvalidToken(t *testing.T) {
	_, err := jwtService.Validate("invalid-token-string")
	requireUnauthorized(t, err)
}

func Test_Validate_ExpiredToken(t *testing.T) {
	token, err := jwtService.Issue(subject, -time.Hour)
	require.NoError(t, err)

	_, err = jwtService.Validate(token)
	requireUnauthorized(t, err)
}

func Test_Validate_WrongKey(t *testing.T) {
	other := NewJWTService("other-key", "test-issuer", "test-audience")
	token, err := other.Issue(subject, time.Hour)
	require.NoError(t, err)

	_, err = jwtService.Validate(token)
	requireUnauthorized(t, err)
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()
	var domainErr *dErrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, dErrors.CodeUnauthorized, domainErr.Code)
}
