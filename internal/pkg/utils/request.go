package utils

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// GetURLParam reads a route parameter and rejects blank values. Encoded
// whitespace in the path still matches the route pattern, so the check
// cannot be left to the router.
func GetURLParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if strings.TrimSpace(value) == "" {
		return "", exceptions.ErrURLParamValidation(nil, name)
	}
	return value, nil
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionData(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}
