package sync

import (
	"hash/fnv"
	base "sync"
)

// StripedLock consistently maps a key space onto a fixed set of mutexes. It
// stands in for the per-account record locking a Solana runtime provides:
// two operations declaring the same record address contend on the same stripe,
// while operations on unrelated records proceed concurrently.
type StripedLock struct {
	locks []base.RWMutex
}

// NewStripedLock returns a new StripedLock with a static number of stripes.
func NewStripedLock(stripes uint) *StripedLock {
	if stripes == 0 {
		stripes = 1
	}

	return &StripedLock{
		locks: make([]base.RWMutex, stripes),
	}
}

// Get gets the lock for a key
func (l *StripedLock) Get(key []byte) *base.RWMutex {
	h := fnv.New32a()
	h.Write(key)
	return &l.locks[h.Sum32()%uint32(len(l.locks))]
}
