package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrincipal(role account.Role) account.Principal {
	return account.Principal{
		ID:      kernel.NewUUID(),
		Email:   "user@example.com",
		Role:    role,
		Country: kernel.Spain,
	}
}

// echoHandler records whether the wrapped handler ran and with which principal.
func echoHandler(ran *bool, seen *account.Principal) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		*ran = true
		if principal, ok := principalFrom(ctx); ok {
			*seen = principal
		}
		return ctx.NoContent(http.StatusOK)
	}
}

func performRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool, account.Principal) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var ran bool
	var seen account.Principal
	err := mw(echoHandler(&ran, &seen))(ctx)
	require.NoError(t, err)

	return rec, ran, seen
}

func TestAuthenticate_ValidToken_AttachesPrincipal(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	principal := newTestPrincipal(account.RegularUser)

	signed, err := tokens.Generate(principal)
	require.NoError(t, err)

	rec, ran, seen := performRequest(t, Authenticate(tokens), "Bearer "+signed)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ran)
	assert.Equal(t, principal.Email, seen.Email)
	assert.Equal(t, principal.Role, seen.Role)
	assert.Equal(t, principal.Country, seen.Country)
}

func TestAuthenticate_MissingHeader_Returns401(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)

	rec, ran, _ := performRequest(t, Authenticate(tokens), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}

func TestAuthenticate_NotBearer_Returns401(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)

	rec, ran, _ := performRequest(t, Authenticate(tokens), "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}

func TestAuthenticate_WrongSecret_Returns401(t *testing.T) {
	issuer := token.NewService("issuer-secret", time.Hour)
	verifier := token.NewService("other-secret", time.Hour)

	signed, err := issuer.Generate(newTestPrincipal(account.RegularUser))
	require.NoError(t, err)

	rec, ran, _ := performRequest(t, Authenticate(verifier), "Bearer "+signed)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}

func TestRequireOperations_OperationsPrincipal_Passes(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(principalContextKey, newTestPrincipal(account.OperationsUser))

	var ran bool
	var seen account.Principal
	err := RequireOperations()(echoHandler(&ran, &seen))(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ran)
}

func TestRequireOperations_RegularPrincipal_Returns403(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(principalContextKey, newTestPrincipal(account.RegularUser))

	var ran bool
	var seen account.Principal
	err := RequireOperations()(echoHandler(&ran, &seen))(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, ran)
}

func TestRequireOperations_NoPrincipal_Returns403(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var ran bool
	var seen account.Principal
	err := RequireOperations()(echoHandler(&ran, &seen))(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, ran)
}
