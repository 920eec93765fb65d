package utils

import (
	"context"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetURLParam(t *testing.T) {
	newRequest := func(name, value string) *chi.Context {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add(name, value)
		return routeCtx
	}

	t.Run("returns the parameter value", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/appointments/appointment-1", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, newRequest("appointmentID", "appointment-1")))

		value, err := GetURLParam(r, "appointmentID")

		require.NoError(t, err)
		assert.Equal(t, "appointment-1", value)
	})

	t.Run("blank parameter is rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/appointments/%20", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, newRequest("appointmentID", " ")))

		_, err := GetURLParam(r, "appointmentID")

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok, "expected a *exceptions.CustomError, got %T", err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, customErr.ClientMessage)
	})

	t.Run("missing parameter is rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/appointments/", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, chi.NewRouteContext()))

		_, err := GetURLParam(r, "appointmentID")

		assert.Error(t, err)
	})
}

func TestBuildPaginationRequest(t *testing.T) {
	t.Run("defaults apply when the query is empty", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/notifications", nil)

		pagination := BuildPaginationRequest(r)

		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
	})

	t.Run("explicit values win", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/notifications?page=3&page_size=25", nil)

		pagination := BuildPaginationRequest(r)

		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, 25, pagination.PageSize)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/notifications?page=-2&page_size=abc", nil)

		pagination := BuildPaginationRequest(r)

		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
	})
}
