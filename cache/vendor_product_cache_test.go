package product_cache

import (
	"testing"
	"time"

	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetRoundTrip(t *testing.T) {
	t.Cleanup(InvalidateAll)

	vendor := uuid.Must(uuid.NewV7())
	catalog := []models.Product{{ID: uuid.Must(uuid.NewV7()), Name: "scarf"}}

	_, ok := Get(vendor)
	require.False(t, ok, "cold cache must miss")

	Set(vendor, catalog)

	got, ok := Get(vendor)
	require.True(t, ok)
	assert.Equal(t, catalog, got)
}

func TestEntriesAreScopedPerVendor(t *testing.T) {
	t.Cleanup(InvalidateAll)

	vendorA := uuid.Must(uuid.NewV7())
	vendorB := uuid.Must(uuid.NewV7())
	Set(vendorA, []models.Product{{Name: "scarf"}})

	_, ok := Get(vendorB)
	assert.False(t, ok)
}

func TestExpiredEntryMisses(t *testing.T) {
	t.Cleanup(InvalidateAll)

	vendor := uuid.Must(uuid.NewV7())
	entries[vendor] = &entry{
		products:  []models.Product{{Name: "scarf"}},
		fetchedAt: time.Now().Add(-TTL - time.Second),
	}

	_, ok := Get(vendor)
	assert.False(t, ok, "entries past the TTL must read as misses")
}

func TestInvalidate(t *testing.T) {
	t.Cleanup(InvalidateAll)

	vendorA := uuid.Must(uuid.NewV7())
	vendorB := uuid.Must(uuid.NewV7())
	Set(vendorA, []models.Product{{Name: "scarf"}})
	Set(vendorB, []models.Product{{Name: "hat"}})

	Invalidate(vendorA)

	_, ok := Get(vendorA)
	assert.False(t, ok)
	_, ok = Get(vendorB)
	assert.True(t, ok, "invalidating one vendor must not evict another")

	InvalidateAll()
	_, ok = Get(vendorB)
	assert.False(t, ok)
}
