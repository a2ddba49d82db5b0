// File: cluster.go
// Role: the Cluster type — a local graph that is also, from its parent's
// point of view, a single vertex; construction, tree navigation, and the
// cluster-level property store.
//
// Concurrency: see doc.go; a Cluster tree is owned by one mutator at a
// time and carries no internal locking.
package clustergraph

// Cluster owns a local graph of vertices and edges, a map from the local
// vertices that represent nested clusters to their child *Cluster, a
// cluster-level property bag, a non-owning back-reference to its parent,
// and a pointer to the identifier allocator shared by the whole tree.
//
// The parent→child edge of the cluster tree is an ordinary owning Go
// pointer (the parent's clusters map); the child→parent back-reference is
// an ordinary Go pointer too. The original this package generalizes needs
// a *weak* back-reference there because it manages cluster lifetime with
// reference-counted shared_ptr, where a parent↔child pointer cycle would
// leak; Go's garbage collector traces and reclaims pointer cycles, so an
// ordinary pointer already gives the "non-owning, must not keep the
// parent alive past its own owner" property for free — there is nothing
// for a weak-pointer type to buy here.
type Cluster struct {
	alloc *IDAllocator

	local *localGraph

	// clusters maps a LocalVertex that hosts a nested cluster to that
	// child. A LocalVertex not present here is a plain (non-cluster)
	// vertex.
	clusters map[LocalVertex]*Cluster

	// globalIndex maps a GlobalVertex directly hosted in this cluster (not
	// a descendant) to its LocalVertex here. O(1) resolution within one
	// cluster; resolve.go walks this plus clusters to search subtrees.
	globalIndex map[GlobalVertex]LocalVertex

	// globalEdgeIndex maps a GlobalEdge id whose entry lives in one of
	// this cluster's own local edges (not a descendant's) to that
	// LocalEdge.
	globalEdgeIndex map[GlobalVertex]LocalEdge

	props *propertyStore

	parent       *Cluster
	parentVertex LocalVertex // valid only if parent != nil: this cluster's vertex in parent

	copyMode bool

	schema Schema
}

// NewRoot creates a new cluster tree: a root cluster that owns a fresh
// IDAllocator, shared by every descendant created under it via
// CreateCluster. schema's mandatory kinds (IndexKey, ChangedKey) are
// injected automatically if the caller did not declare them.
//
// Complexity: O(1).
func NewRoot(schema Schema) *Cluster {
	schema = schema.normalized()

	return &Cluster{
		alloc:           NewIDAllocator(),
		local:           newLocalGraph(),
		clusters:        make(map[LocalVertex]*Cluster),
		globalIndex:     make(map[GlobalVertex]LocalVertex),
		globalEdgeIndex: make(map[GlobalVertex]LocalEdge),
		props:           newPropertyStore(),
		parentVertex:    invalidLocalVertex,
		schema:          schema,
	}
}

// newChild builds a cluster that shares parent's allocator and schema. It
// does not register itself in parent's clusters map or local graph; the
// caller (CreateCluster) does that as a single atomic step.
func newChild(parent *Cluster) *Cluster {
	return &Cluster{
		alloc:           parent.alloc,
		local:           newLocalGraph(),
		clusters:        make(map[LocalVertex]*Cluster),
		globalIndex:     make(map[GlobalVertex]LocalVertex),
		globalEdgeIndex: make(map[GlobalVertex]LocalEdge),
		props:           newPropertyStore(),
		parent:          parent,
		parentVertex:    invalidLocalVertex,
		schema:          parent.schema,
	}
}

// IsRoot reports whether this cluster has no parent.
//
// Complexity: O(1).
func (c *Cluster) IsRoot() bool { return c.parent == nil }

// Parent returns this cluster's parent and true, or nil and false for the
// root.
//
// Complexity: O(1).
func (c *Cluster) Parent() (*Cluster, bool) {
	if c.parent == nil {
		return nil, false
	}

	return c.parent, true
}

// Root walks up to, and returns, the top-level cluster of this tree.
//
// Complexity: O(depth).
func (c *Cluster) Root() *Cluster {
	cur := c
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// SetCopyMode toggles copy mode for this cluster only. While on, mutating
// operations on this cluster do not set its changed property. copyInto
// (clone.go) toggles this on the destination tree for the duration of the
// copy.
//
// Complexity: O(1).
func (c *Cluster) SetCopyMode(on bool) { c.copyMode = on }

// setChanged marks this cluster as changed, unless copy mode is active.
func (c *Cluster) setChanged() {
	if c.copyMode {
		return
	}
	SetProperty(c.props, ChangedKey, true)
}

// Changed reports this cluster's changed property.
//
// Complexity: O(1).
func (c *Cluster) Changed() bool { return GetProperty(c.props, ChangedKey) }

// ResetChanged clears this cluster's changed property directly. It is the
// explicit reset path: SetCopyMode only stops mutations from setting the
// property and never clears it.
//
// Complexity: O(1).
func (c *Cluster) ResetChanged() { SetProperty(c.props, ChangedKey, false) }

// ClusterProperty returns this cluster's value for k, default-constructing
// it on first access.
func ClusterProperty[V any](c *Cluster, k *PropertyKey[V]) V {
	return GetProperty(c.props, k)
}

// SetClusterProperty sets this cluster's value for k. Does not itself set
// the changed flag — cluster property mutation outside the mutation engine
// is caller-driven bookkeeping, not a structural change.
func SetClusterProperty[V any](c *Cluster, k *PropertyKey[V], v V) {
	SetProperty(c.props, k, v)
}

// IsCluster reports whether the local vertex v hosts a nested cluster.
//
// Complexity: O(1).
func (c *Cluster) IsCluster(v LocalVertex) bool {
	_, ok := c.clusters[v]

	return ok
}

// ClusterAt returns the child cluster hosted at local vertex v, if any.
//
// Complexity: O(1).
func (c *Cluster) ClusterAt(v LocalVertex) (*Cluster, bool) {
	child, ok := c.clusters[v]

	return child, ok
}

// VertexOfCluster returns the LocalVertex in c that represents child,
// the inverse of ClusterAt. Fails if child is not a direct child of c.
//
// Complexity: O(1).
func (c *Cluster) VertexOfCluster(child *Cluster) (LocalVertex, bool) {
	if child.parent != c {
		return invalidLocalVertex, false
	}

	return child.parentVertex, true
}

// NumClusters returns the number of direct child clusters.
//
// Complexity: O(1).
func (c *Cluster) NumClusters() int { return len(c.clusters) }

// Clusters returns every direct child cluster's representing LocalVertex,
// sorted ascending.
//
// Complexity: O(k log k), k = NumClusters().
func (c *Cluster) Clusters() []LocalVertex {
	out := make([]LocalVertex, 0, len(c.clusters))
	for v := range c.clusters {
		out = append(out, v)
	}
	sortLocalVertices(out)

	return out
}
