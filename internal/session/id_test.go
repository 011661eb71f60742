package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	require.True(t, strings.HasPrefix(a, "cmss-"), "id %q lacks prefix", a)
	assert.Len(t, a, len("cmss-")+26, "ULID part should be 26 chars")
	assert.NotEqual(t, a, b)
	// Monotonic entropy: ids minted in order sort in order.
	assert.Less(t, a, b)
}

func TestNewIDConcurrent(t *testing.T) {
	const n = 100
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() { ids <- NewID() }()
	}
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := <-ids
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
