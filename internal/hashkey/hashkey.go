// Package hashkey computes a stable 32-bit hash for interner keys.
package hashkey

import "github.com/spaolacci/murmur3"

// bucketSeed is fixed so the same string always hashes to the same bucket
// across the lifetime of a process; the pool never persists a hash to disk.
const bucketSeed uint32 = 0x53524d50 // "SRMP"

// Of returns a hash of s suitable for bucketing StringPool entries. It is
// not a substitute for comparing the strings themselves: collisions are
// expected and must be resolved by string equality.
func Of(s string) uint32 {
	return murmur3.Sum32WithSeed([]byte(s), bucketSeed)
}
