// Package cache provides the sharded LRU cache used to memoize resolved
// faces.
//
// Keys are strings, usually fontopts.Options.Key. A key is assigned to one
// of 16 shards by its xxh3 hash, which equals fontopts.Options.Hash for
// option keys, and each shard keeps its own LRU list and lock:
//
//	c := cache.New[Face](64)
//	face, err := c.GetOrCreate(opts.Key(), func() (Face, error) {
//	    return resolve(opts)
//	})
//
// # Thread Safety
//
// Sharded is safe for concurrent use and must not be copied after creation.
package cache
