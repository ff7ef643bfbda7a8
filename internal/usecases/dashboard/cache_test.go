package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestKey(t *testing.T) {
	now := time.Date(2025, time.June, 13, 9, 0, 0, 0, time.UTC)

	first, err := Key(unitInput(), now)
	require.NoError(t, err)
	assert.Len(t, first, 64)

	sameDay, err := Key(unitInput(), now.Add(8*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first, sameDay)

	nextDay, err := Key(unitInput(), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotEqual(t, first, nextDay)

	changed := unitInput()
	changed.Sales[0].Amount = 3001
	otherInput, err := Key(changed, now)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherInput)
}

func TestKey_UnencodableInput(t *testing.T) {
	input := unitInput()
	input.Sales[0].Amount = math.NaN()

	key, err := Key(input, time.Date(2025, time.June, 13, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, key)
	assert.ErrorIs(t, err, ErrEncodeInput)
}

func TestCache_PutEvictsOldest(t *testing.T) {
	cache := NewCache(2)

	cache.Put("a", &domain.Dashboard{ID: "a"})
	cache.Put("b", &domain.Dashboard{ID: "b"})
	cache.Put("a", &domain.Dashboard{ID: "a2"})
	cache.Put("c", &domain.Dashboard{ID: "c"})

	assert.Equal(t, 2, cache.Len())

	_, found := cache.Get("a")
	assert.False(t, found)

	cached, found := cache.Get("c")
	require.True(t, found)
	assert.Equal(t, "c", cached.ID)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestNewCache_DefaultSize(t *testing.T) {
	cache := NewCache(0)
	assert.Equal(t, DefaultCacheSize, cache.maxEntries)
}
