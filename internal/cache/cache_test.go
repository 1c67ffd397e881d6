package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	_, ok := c.Get(context.Background(), "deadbeef")
	assert.False(t, ok)
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "deadbeef", "<section>hi</section>"))

	got, ok := c.Get(ctx, "deadbeef")
	require.True(t, ok)
	assert.Equal(t, "<section>hi</section>", got)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "fp", "old"))
	require.NoError(t, c.Set(ctx, "fp", "new"))

	got, ok := c.Get(ctx, "fp")
	require.True(t, ok)
	assert.Equal(t, "new", got)
}
