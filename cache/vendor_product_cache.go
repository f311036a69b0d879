package product_cache

import (
	"sync"
	"time"

	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/google/uuid"
)

const TTL = 5 * time.Minute

// ── Per-vendor product index ─────────────────────────────────────────────────
// The vendor order view joins every order's line items against product
// ownership; indexing a vendor's catalog here cuts that join to map lookups.

type entry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	mu      sync.RWMutex
	entries = map[uuid.UUID]*entry{}
)

func Get(vendorID uuid.UUID) ([]models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := entries[vendorID]; ok && time.Since(e.fetchedAt) < TTL {
		return e.products, true
	}
	return nil, false
}

func Set(vendorID uuid.UUID, products []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	entries[vendorID] = &entry{products: products, fetchedAt: time.Now()}
}

// ── Invalidate (call on any product create/update/delete) ────────────────────

func Invalidate(vendorID uuid.UUID) {
	mu.Lock()
	delete(entries, vendorID)
	mu.Unlock()
}

func InvalidateAll() {
	mu.Lock()
	entries = map[uuid.UUID]*entry{}
	mu.Unlock()
}
