package utils_test

import (
	"testing"

	"github.com/Aphia-Commerce/aphia-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderRefShape(t *testing.T) {
	ref := utils.NewOrderRef()
	require.Len(t, ref, 8)
	for _, ch := range ref {
		assert.True(t, (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'z'),
			"order ref must stay in the base36 alphabet, got %q", ch)
	}
}

func TestNewOrderRefUniqueUnderRapidCalls(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		ref := utils.NewOrderRef()
		_, dup := seen[ref]
		require.False(t, dup, "duplicate order ref %q after %d calls", ref, i)
		seen[ref] = struct{}{}
	}
}

func TestNewTicketNoShape(t *testing.T) {
	ticket := utils.NewTicketNo()
	assert.Len(t, ticket, 6)
}

func TestRandomTokenLength(t *testing.T) {
	for _, n := range []int{1, 2, 4, 16} {
		assert.Len(t, utils.RandomToken(n), n)
	}
}
