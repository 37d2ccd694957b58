// Package hash provides stable hashing for partition bucketing.
package hash

import "github.com/zeebo/xxh3"

// Bucket maps a partition key attribute value to a numeric partition in
// [0, count).
//
// The mapping is stable across processes and restarts: the same value and
// count always produce the same partition. A count below 2 always yields
// partition 0.
//
// Parameters:
//   - value: Partition key attribute value of a record
//   - count: Total number of numeric partitions
//
// Returns:
//   - int: Partition index in [0, count)
func Bucket(value string, count int) int {
	if count <= 1 {
		return 0
	}

	return int(xxh3.HashString(value) % uint64(count))
}
