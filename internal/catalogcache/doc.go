// Package catalogcache holds the most recently built catalog in memory, keyed
// by the content fingerprint of its source.
//
// Get hashes the source and returns the cached catalog when the fingerprint
// is unchanged; otherwise it reads and rebuilds. Concurrent rebuilds collapse
// into a single read through singleflight. Invalidate drops the entry so the
// next Get rebuilds unconditionally, and Rebuild forces a build immediately.
// Each build is stamped with a fresh generation ID so consumers can tell
// snapshots apart even when the content hash repeats.
package catalogcache
