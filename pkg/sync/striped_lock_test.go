package sync

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripedLock_ConsistentMapping(t *testing.T) {
	l := NewStripedLock(64)

	for i := 0; i < 100; i++ {
		key := []byte(fmt.Sprintf("record%d", i))
		assert.Same(t, l.Get(key), l.Get(key))
	}
}

func TestStripedLock_KeysSpreadAcrossStripes(t *testing.T) {
	l := NewStripedLock(64)

	seen := make(map[interface{}]struct{})
	for i := 0; i < 1000; i++ {
		key := []byte(fmt.Sprintf("record%d", i))
		seen[l.Get(key)] = struct{}{}
	}

	// With 1000 keys over 64 stripes, effectively every stripe should be hit.
	assert.True(t, len(seen) > 32)
}

func TestStripedLock_ZeroStripes(t *testing.T) {
	l := NewStripedLock(0)
	require.NotNil(t, l.Get([]byte("record")))
}
