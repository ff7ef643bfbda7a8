package dashboard

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const DefaultCacheSize = 64

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache memoriza dashboards pelo hash da entrada e do dia de referência.
// Quando cheio, descarta a entrada mais antiga.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]*domain.Dashboard
	order      []string
}

func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}

	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[string]*domain.Dashboard, maxEntries),
		order:      make([]string, 0, maxEntries),
	}
}

type cacheKey struct {
	Input domain.DashboardInput `json:"input"`
	Day   string                `json:"day"`
}

// Key calcula o SHA-256 da serialização da entrada. O dia de "now" entra na chave
// porque a projeção muda de um dia para o outro.
func Key(input domain.DashboardInput, now time.Time) (string, error) {
	payload, err := json.Marshal(cacheKey{Input: input, Day: now.Format(time.DateOnly)})
	if err != nil {
		return "", errors.Wrap(ErrEncodeInput, err.Error())
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func (c *Cache) Get(key string) (*domain.Dashboard, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dashboard, exists := c.entries[key]
	return dashboard, exists
}

func (c *Cache) Put(key string, dashboard *domain.Dashboard) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = dashboard
		return
	}

	if len(c.order) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = dashboard
	c.order = append(c.order, key)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Purge descarta todas as entradas. O agendador chama após cada recarga do snapshot.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*domain.Dashboard, c.maxEntries)
	c.order = c.order[:0]
}
