package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func requestWithClaims(t *testing.T, claims map[string]interface{}) *http.Request {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestAuthRequired_AccessTokenPasses(t *testing.T) {
	next, called := okHandler()
	req := requestWithClaims(t, map[string]interface{}{
		"employee_id": "EMP001",
		"type":        "access",
	})
	rec := httptest.NewRecorder()

	AuthRequired(next).ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	next, called := okHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(jwtauth.NewContext(req.Context(), nil, jwtauth.ErrNoTokenFound))
	rec := httptest.NewRecorder()

	AuthRequired(next).ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_WrongTokenType(t *testing.T) {
	next, called := okHandler()
	req := requestWithClaims(t, map[string]interface{}{
		"employee_id": "EMP001",
		"type":        "refresh",
	})
	rec := httptest.NewRecorder()

	AuthRequired(next).ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	next, called := okHandler()
	req := requestWithClaims(t, map[string]interface{}{
		"employee_id": "ADMIN01",
		"type":        "access",
		"role":        "admin",
	})
	rec := httptest.NewRecorder()

	AdminOnly(next).ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_EmployeeForbidden(t *testing.T) {
	next, called := okHandler()
	req := requestWithClaims(t, map[string]interface{}{
		"employee_id": "EMP001",
		"type":        "access",
		"role":        "employee",
	})
	rec := httptest.NewRecorder()

	AdminOnly(next).ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_MissingRoleForbidden(t *testing.T) {
	next, called := okHandler()
	req := requestWithClaims(t, map[string]interface{}{
		"employee_id": "EMP001",
		"type":        "access",
	})
	rec := httptest.NewRecorder()

	AdminOnly(next).ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
