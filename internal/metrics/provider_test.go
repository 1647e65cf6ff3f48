package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("people")
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.MeterProvider())

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("people")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	handler := provider.Handler()
	require.NotNil(t, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProvider_Shutdown(t *testing.T) {
	provider, err := NewProvider("people")
	require.NoError(t, err)

	assert.NoError(t, provider.Shutdown(context.Background()))
}
