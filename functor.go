// File: functor.go
// Role: the callback types the mutation engine invokes so a caller can
// release external resources (solver state, payload handles) tied to an
// entity at the moment it is structurally removed, per spec 4.6/5.
package clustergraph

// EdgeFunc is invoked once per GlobalEdge a removal operation drops. A nil
// EdgeFunc is a valid no-op.
type EdgeFunc func(GlobalEdge)

func (f EdgeFunc) call(ge GlobalEdge) {
	if f != nil {
		f(ge)
	}
}

// RemovalCallbacks is the richer functor removeCluster takes: a subtree
// removal touches clusters, the vertices inside them, and the edges
// between those vertices, so the caller may want a distinct hook for
// each. Any field left nil is a no-op for that kind of entity.
type RemovalCallbacks struct {
	// OnCluster is invoked on each cluster being destroyed, before its own
	// contents (vertices, edges, nested clusters) are destroyed.
	OnCluster func(*Cluster)
	// OnVertex is invoked once per GlobalVertex removed.
	OnVertex func(GlobalVertex)
	// OnEdge is invoked once per GlobalEdge removed.
	OnEdge func(GlobalEdge)
}

func (cb RemovalCallbacks) cluster(c *Cluster) {
	if cb.OnCluster != nil {
		cb.OnCluster(c)
	}
}

func (cb RemovalCallbacks) vertex(g GlobalVertex) {
	if cb.OnVertex != nil {
		cb.OnVertex(g)
	}
}

func (cb RemovalCallbacks) edge(ge GlobalEdge) {
	if cb.OnEdge != nil {
		cb.OnEdge(ge)
	}
}

// ObjectFunc maps a stored payload through to its counterpart in a
// CopyInto destination, given the Kind it was stored under and its
// current value (as any, since the store is heterogeneous). A caller
// that wants a deep clone for kind K type-asserts the value back to K's
// handle type, clones it, and returns the clone; a caller that wants to
// share the same handle across source and destination just returns v
// unchanged. A nil ObjectFunc shares every handle unchanged.
type ObjectFunc func(k Kind, v any) any
