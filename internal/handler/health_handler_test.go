package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "userbase/internal/errors"
	"userbase/internal/model"
)

// mockPingRepo stubs the repository for health checks; only Ping matters.
type mockPingRepo struct {
	healthy bool
}

func (m *mockPingRepo) Ping(ctx context.Context) error {
	if m.healthy {
		return nil
	}
	return errors.New("connection refused")
}

func (m *mockPingRepo) Create(ctx context.Context, name, passwordHash string) (uint, error) {
	return 0, nil
}

func (m *mockPingRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	return nil, nil
}

func (m *mockPingRepo) FindByID(ctx context.Context, id uint) (*model.UserView, error) {
	return nil, nil
}

func (m *mockPingRepo) List(ctx context.Context) ([]model.UserView, error) {
	return nil, nil
}

func (m *mockPingRepo) Update(ctx context.Context, id uint, name, passwordHash *string) (bool, error) {
	return false, nil
}

func (m *mockPingRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return false, nil
}

func performHealth(t *testing.T, repo *mockPingRepo) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler(repo)
	require.NoError(t, h.Health(c))
	return rec
}

func TestHealthHandler(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		rec := performHealth(t, &mockPingRepo{healthy: true})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("store unreachable", func(t *testing.T) {
		rec := performHealth(t, &mockPingRepo{healthy: false})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp apperrors.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
	})
}
