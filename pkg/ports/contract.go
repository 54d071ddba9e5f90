package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResponseCacheContract runs a suite of tests to verify that a ResponseCache
// implementation adheres to the defined interface contract.
func RunResponseCacheContract(t *testing.T, cache ResponseCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405.000000")

	t.Run("Set and Get", func(t *testing.T) {
		err := cache.Set(ctx, key, "Save 70% of net cash flow.")
		require.NoError(t, err, "Set should not return error")

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.True(t, ok)
		assert.Equal(t, "Save 70% of net cash flow.", got)
	})

	t.Run("Miss", func(t *testing.T) {
		got, ok, err := cache.Get(ctx, "missing-"+key)
		require.NoError(t, err, "a miss is not an error")
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key+"-ow", "first"))
		require.NoError(t, cache.Set(ctx, key+"-ow", "second"))

		got, ok, err := cache.Get(ctx, key+"-ow")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", got)
	})
}
