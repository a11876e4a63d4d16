package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clinic-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithClaims(role string, isAdmin bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	ctx = context.WithValue(ctx, IsAdminKey, isAdmin)
	return req.WithContext(ctx)
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleDoctor)(next).ServeHTTP(rec, requestWithClaims("DOCTOR", false))

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleDoctor)(next).ServeHTTP(rec, requestWithClaims("RECEPTIONIST", false))

	assert.False(t, *called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAdminBypass(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleDoctor)(next).ServeHTTP(rec, requestWithClaims("", true))

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleMissingClaims(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireRole(entity.RoleDoctor)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(rec, requestWithClaims("", true))
	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)

	next, called = okHandler()
	rec = httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(rec, requestWithClaims("DOCTOR", false))
	assert.False(t, *called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireStaff(t *testing.T) {
	for _, role := range []string{"DOCTOR", "RECEPTIONIST"} {
		next, called := okHandler()
		rec := httptest.NewRecorder()

		RequireStaff(next).ServeHTTP(rec, requestWithClaims(role, false))
		assert.True(t, *called, role)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	next, called := okHandler()
	rec := httptest.NewRecorder()

	RequireStaff(next).ServeHTTP(rec, requestWithClaims("", false))
	assert.False(t, *called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
