// File: identity.go
// Role: the four identifier/handle types that distinguish a logical
// entity (GlobalVertex/GlobalEdge) from its current position
// (LocalVertex/LocalEdge) in one cluster's local graph.
package clustergraph

import "sort"

// GlobalVertex is a tree-wide stable identifier for a logical vertex. It is
// never zero/invalid once assigned: values 0..sentinelMax are reserved and
// never issued by an IDAllocator.
type GlobalVertex int64

// Valid reports whether v is an assigned, non-sentinel global vertex id.
func (v GlobalVertex) Valid() bool { return v > sentinelMax }

// GlobalEdge is a tree-wide stable identifier for a logical edge. Source
// and Target are informational only — the graph is undirected — and two
// GlobalEdge values are equal iff their ID is equal, regardless of Source/
// Target.
type GlobalEdge struct {
	Source GlobalVertex
	Target GlobalVertex
	ID     GlobalVertex
}

// Equal reports whether two global edges denote the same logical edge.
func (e GlobalEdge) Equal(o GlobalEdge) bool { return e.ID == o.ID }

// Valid reports whether e carries an assigned, non-sentinel id.
func (e GlobalEdge) Valid() bool { return e.ID.Valid() }

// LocalVertex is a positional handle into one particular cluster's local
// graph. It is stable across insertions and unrelated removals in that
// cluster (see localgraph.go), but is not comparable across clusters and
// is invalidated by any operation that moves or removes the vertex it
// names.
type LocalVertex int

// invalidLocalVertex is returned by lookups that fail; it is never a valid
// slot index (slot indices are assigned starting at 0).
const invalidLocalVertex LocalVertex = -1

// LocalEdge is a positional handle into one particular cluster's local
// graph, with the same stability and non-portability contract as
// LocalVertex.
type LocalEdge int

const invalidLocalEdge LocalEdge = -1

// sortLocalVertices sorts a slice of LocalVertex ascending in place.
func sortLocalVertices(vs []LocalVertex) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}

// sortGlobalVertices sorts a slice of GlobalVertex ascending in place.
func sortGlobalVertices(vs []GlobalVertex) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}
