// File: idalloc.go
// Role: monotone identifier issuance shared by a cluster and every
// descendant in its tree.
//
// Determinism:
//   - Generate() is strictly increasing; the sequence never repeats a value
//     within the lifetime of one allocator.
//   - SetCount fast-forwards only; it never lowers the counter, so no id at
//     or below a previously issued value is ever reissued.
//
// Concurrency:
//   - Not synchronized. A cluster tree is owned by a single mutator at a
//     time (see package doc); every cluster in the tree shares one
//     *IDAllocator by pointer, so a mutation on any cluster may advance it.
package clustergraph

import "math"

// sentinelMax is the largest value reserved as an invalid/sentinel
// GlobalVertex or GlobalEdge id. Values 0..sentinelMax are never issued.
const sentinelMax = 9

// idAllocatorSeed is the counter value a fresh allocator starts from, so
// that the first Generate() call yields 11.
const idAllocatorSeed int64 = 10

// IDAllocator issues process-unique, monotonically increasing integer ids
// for GlobalVertex and GlobalEdge values across one cluster tree.
//
// A single instance is shared, by pointer, across every cluster in a tree:
// the root allocates one at construction and every CreateCluster call
// passes the same pointer down to the child.
type IDAllocator struct {
	counter int64
}

// NewIDAllocator returns a fresh allocator whose first Generate() call
// yields 11.
//
// Complexity: O(1).
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{counter: idAllocatorSeed}
}

// Generate returns a new unique id, strictly greater than every id this
// allocator has returned before (and greater than sentinelMax).
//
// Complexity: O(1).
func (a *IDAllocator) Generate() (int64, error) {
	if a.counter >= math.MaxInt64 {
		return 0, ErrAllocatorExhausted
	}
	a.counter++

	return a.counter, nil
}

// Count returns the value of the last issued id (10 if Generate has never
// been called, so that the first Generate() yields 11).
//
// Complexity: O(1).
func (a *IDAllocator) Count() int64 {
	return a.counter
}

// SetCount fast-forwards the allocator so that no id at or below n will
// ever be (re)issued. Calling SetCount with a value at or below the
// current count is a no-op: the counter never moves backwards.
//
// Complexity: O(1).
func (a *IDAllocator) SetCount(n int64) {
	if n > a.counter {
		a.counter = n
	}
}
