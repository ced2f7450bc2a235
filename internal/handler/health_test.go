package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHealthChecker mocks a storage backend's health probe
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("no checks", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("storage reachable", func(t *testing.T) {
		checker := new(MockHealthChecker)
		checker.On("CheckHealth", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		checker.AssertExpectations(t)
	})

	t.Run("storage down", func(t *testing.T) {
		ok := HealthCheckFunc(func(context.Context) error { return nil })
		checker := new(MockHealthChecker)
		checker.On("CheckHealth", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline
		})).Return(errors.New("connection refused"))

		w := httptest.NewRecorder()
		HandleReadyz(ok, checker).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable","message":"storage unavailable"}`, w.Body.String())
		checker.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("1.2.3").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
	assert.Contains(t, w.Body.String(), runtime.Version())
}

func TestResolveVersion(t *testing.T) {
	assert.Equal(t, "dev", resolveVersion(""))
	assert.Equal(t, "v9", resolveVersion("v9"))

	old := Version
	Version = "v1.0.0"
	t.Cleanup(func() { Version = old })
	assert.Equal(t, "v1.0.0", resolveVersion("v9"))
}
