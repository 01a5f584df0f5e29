package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"taxi-fare-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marunouchi = models.GeocodeResult{
	Latitude:         35.681236,
	Longitude:        139.767125,
	FormattedAddress: "東京都千代田区丸の内",
	Confidence:       0.9,
	Source:           models.SourcePrecise,
}

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(10, time.Minute)

	_, ok := c.Get(ctx, "東京都千代田区丸の内")
	assert.False(t, ok)

	c.Set(ctx, "東京都千代田区丸の内", marunouchi)

	got, ok := c.Get(ctx, "東京都千代田区丸の内")
	require.True(t, ok)
	assert.Equal(t, marunouchi, got)
	assert.Equal(t, 1, c.Len())
}

func TestMemory_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(2, time.Minute)

	c.Set(ctx, "a", marunouchi)
	c.Set(ctx, "b", marunouchi)
	_, _ = c.Get(ctx, "a")
	c.Set(ctx, "c", marunouchi)

	_, ok := c.Get(ctx, "b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get(ctx, "a")
	assert.True(t, ok)
	_, ok = c.Get(ctx, "c")
	assert.True(t, ok)
}

func TestMemory_Expires(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(10, 50*time.Millisecond)

	c.Set(ctx, "a", marunouchi)
	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", (i+j)%50)
				c.Set(ctx, key, marunouchi)
				_, _ = c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 100)
}
