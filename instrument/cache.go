package instrument

import (
	"sync"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("solid-grab-fingerprint-cache-key") // 32 bytes

// fingerprint computes a 64-bit content digest used to skip files that have
// not changed between runs.
func fingerprint(data []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(data)
	return h.Sum64(), err
}

// fingerprintCache remembers the digest of every file a service instance
// has already processed.
type fingerprintCache struct {
	mu   sync.Mutex
	seen map[string]uint64
}

func newFingerprintCache() *fingerprintCache {
	return &fingerprintCache{seen: make(map[string]uint64)}
}

// upToDate records the digest for path and reports whether it matches the
// previously recorded one.
func (c *fingerprintCache) upToDate(path string, digest uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	previous, ok := c.seen[path]
	c.seen[path] = digest
	return ok && previous == digest
}
