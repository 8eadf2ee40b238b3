// Package repository defines the roster store interface and errors.
package repository

type storeConfig struct {
	shardCount int
}

// Option applies a configuration option to the MemStore.
type Option func(*storeConfig)

// WithShardCount sets the number of lock shards. Values below 1 are
// ignored.
func WithShardCount(count int) Option {
	return func(c *storeConfig) {
		if count >= 1 {
			c.shardCount = count
		}
	}
}
