package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("people")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	metrics, err := NewBusinessMetrics(provider.MeterProvider(), "people")
	require.NoError(t, err)
	assert.NotNil(t, metrics)
}

func TestBusinessMetrics_Record(t *testing.T) {
	provider, err := NewProvider("people")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	metrics, err := NewBusinessMetrics(provider.MeterProvider(), "people")
	require.NoError(t, err)

	ctx := context.Background()

	// Recording must not panic and must accept arbitrary label values
	metrics.RecordOperation(ctx, "users", "user_create", "success")
	metrics.RecordOperation(ctx, "profiles", "profile_get", "error")
	metrics.RecordDuration(ctx, "users", "user_create", 150*time.Millisecond, "success")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	metrics := NewNoOpBusinessMetrics()

	ctx := context.Background()
	metrics.RecordOperation(ctx, "users", "user_create", "success")
	metrics.RecordDuration(ctx, "users", "user_create", time.Second, "success")
}
