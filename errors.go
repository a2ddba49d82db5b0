// File: errors.go
// Role: sentinel errors for the cluster graph engine.
// Policy:
//   - Only package-level sentinel values are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
package clustergraph

import "errors"

var (
	// ErrVertexNotFound indicates a lookup for a global or local vertex
	// found nothing in the cluster's subtree.
	ErrVertexNotFound = errors.New("clustergraph: vertex not found")

	// ErrEdgeNotFound indicates a lookup for a global or local edge found
	// nothing in the cluster's subtree.
	ErrEdgeNotFound = errors.New("clustergraph: edge not found")

	// ErrClusterNotFound indicates a local vertex does not host a child
	// cluster, or a cluster reference is not a child of the receiver.
	ErrClusterNotFound = errors.New("clustergraph: cluster not found")

	// ErrSameVertex indicates addEdge was called with identical endpoints
	// on a graph where self-loops are not modeled as local edges.
	ErrSameVertex = errors.New("clustergraph: source and target are the same vertex")

	// ErrIsCluster indicates an operation that requires a non-cluster local
	// vertex was given a vertex that hosts a child cluster.
	ErrIsCluster = errors.New("clustergraph: vertex is a cluster")

	// ErrNotCluster indicates an operation that requires a cluster vertex
	// was given a local vertex with no child cluster attached.
	ErrNotCluster = errors.New("clustergraph: vertex is not a cluster")

	// ErrNotInSubtree indicates a global vertex or edge referenced by a
	// global-scoped operation does not exist anywhere in the subtree
	// rooted at the receiving cluster.
	ErrNotInSubtree = errors.New("clustergraph: id not found in this subtree")

	// ErrNotDirectChild indicates moveToSubcluster/removeCluster were given
	// a cluster vertex that is not a direct child of the receiver.
	ErrNotDirectChild = errors.New("clustergraph: not a direct child cluster")

	// ErrIsRoot indicates moveToParent was called on the root cluster,
	// which has no parent to promote a vertex into.
	ErrIsRoot = errors.New("clustergraph: cluster has no parent")

	// ErrForeignAllocator indicates a child cluster was constructed against
	// an allocator different from its intended parent's, which would break
	// global-id uniqueness across the tree.
	ErrForeignAllocator = errors.New("clustergraph: child does not share parent's allocator")

	// ErrInvalidID indicates a caller-supplied GlobalVertex or GlobalEdge id
	// was a reserved sentinel (<=9) and therefore cannot be adopted.
	ErrInvalidID = errors.New("clustergraph: invalid global id")

	// ErrAllocatorExhausted indicates the identifier space has been
	// exhausted. Practically unreachable for a 64-bit counter; Generate
	// returns it instead of wrapping once the counter has reached
	// math.MaxInt64.
	ErrAllocatorExhausted = errors.New("clustergraph: identifier space exhausted")
)
