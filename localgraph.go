// File: localgraph.go
// Role: the undirected graph of local vertices/edges inside one cluster:
// list-backed (here, a slot arena with a free list) so that handles
// survive insertions and unrelated removals, per spec.
//
// Determinism:
//   - Iteration (vertices/edges) walks the arena in ascending slot-index
//     order, skipping freed slots; freed indices are reused by later
//     allocations (free-list LIFO), so index order is stable between
//     structural changes but not a permanent numbering.
// Invariants:
//   - No parallel local edges: at most one LocalEdge connects any ordered
//     pair of distinct local vertices (vertexSlot.adj enforces this — it
//     maps each neighbor to a single LocalEdge).
//   - A local edge's globals list is never empty; the caller (mutate_edge.go)
//     removes the local edge slot when the last entry is popped.
package clustergraph

import "sort"

// globalEdgeEntry is one of the (possibly many) global edges a local edge
// aggregates, together with the per-global-edge object store.
type globalEdgeEntry struct {
	edge    GlobalEdge
	objects *objectStore
}

// vertexSlot is the storage for one local vertex.
type vertexSlot struct {
	alive   bool
	global  GlobalVertex
	props   *propertyStore
	objects *objectStore
	// adj maps a neighboring LocalVertex to the LocalEdge connecting them.
	// Absence of a cluster mapping (see Cluster.clusters in cluster.go) means
	// this slot is a plain vertex; presence in cluster.clusters means it
	// represents a child cluster.
	adj map[LocalVertex]LocalEdge
}

// edgeSlot is the storage for one local edge: an unordered pair of
// endpoints plus the ordered, non-empty list of global edges it aggregates.
type edgeSlot struct {
	alive   bool
	a, b    LocalVertex
	props   *propertyStore
	globals []globalEdgeEntry
}

// localGraph is the slot-arena-backed undirected graph owned by one
// Cluster. Freed slots are tracked on freeV/freeE and reused LIFO.
type localGraph struct {
	vertices []vertexSlot
	freeV    []LocalVertex
	edges    []edgeSlot
	freeE    []LocalEdge

	vertexCount int
	edgeCount   int
}

func newLocalGraph() *localGraph {
	return &localGraph{}
}

// allocVertex reserves a fresh slot, returning its handle. The slot is
// initialized alive with empty property/object stores and no adjacency.
func (lg *localGraph) allocVertex(global GlobalVertex) LocalVertex {
	slot := vertexSlot{
		alive:   true,
		global:  global,
		props:   newPropertyStore(),
		objects: newObjectStore(),
		adj:     make(map[LocalVertex]LocalEdge),
	}
	lg.vertexCount++
	if n := len(lg.freeV); n > 0 {
		v := lg.freeV[n-1]
		lg.freeV = lg.freeV[:n-1]
		lg.vertices[v] = slot

		return v
	}
	lg.vertices = append(lg.vertices, slot)

	return LocalVertex(len(lg.vertices) - 1)
}

// freeVertex releases v's slot. The caller must have already removed every
// incident local edge.
func (lg *localGraph) freeVertex(v LocalVertex) {
	lg.vertices[v] = vertexSlot{}
	lg.freeV = append(lg.freeV, v)
	lg.vertexCount--
}

func (lg *localGraph) vertexAlive(v LocalVertex) bool {
	return v >= 0 && int(v) < len(lg.vertices) && lg.vertices[v].alive
}

func (lg *localGraph) edgeAlive(e LocalEdge) bool {
	return e >= 0 && int(e) < len(lg.edges) && lg.edges[e].alive
}

// findEdge returns the local edge connecting u and v, if any.
func (lg *localGraph) findEdge(u, v LocalVertex) (LocalEdge, bool) {
	e, ok := lg.vertices[u].adj[v]

	return e, ok
}

// allocEdge reserves a fresh edge slot connecting u and v and registers it
// in both endpoints' adjacency maps. first is placed as the sole (initial)
// entry of the new edge's globals list. u and v must be distinct and must
// not already be connected by a local edge (callers check this).
func (lg *localGraph) allocEdge(u, v LocalVertex, first globalEdgeEntry) LocalEdge {
	slot := edgeSlot{alive: true, a: u, b: v, props: newPropertyStore(), globals: []globalEdgeEntry{first}}
	var handle LocalEdge
	if n := len(lg.freeE); n > 0 {
		handle = lg.freeE[n-1]
		lg.freeE = lg.freeE[:n-1]
		lg.edges[handle] = slot
	} else {
		lg.edges = append(lg.edges, slot)
		handle = LocalEdge(len(lg.edges) - 1)
	}
	lg.vertices[u].adj[v] = handle
	lg.vertices[v].adj[u] = handle
	lg.edgeCount++

	return handle
}

// freeEdge releases e's slot and removes it from both endpoints' adjacency
// maps.
func (lg *localGraph) freeEdge(e LocalEdge) {
	slot := lg.edges[e]
	delete(lg.vertices[slot.a].adj, slot.b)
	delete(lg.vertices[slot.b].adj, slot.a)
	lg.edges[e] = edgeSlot{}
	lg.freeE = append(lg.freeE, e)
	lg.edgeCount--
}

// endpoints returns the unordered pair of local vertices edge e connects.
func (lg *localGraph) endpoints(e LocalEdge) (LocalVertex, LocalVertex) {
	return lg.edges[e].a, lg.edges[e].b
}

// other returns the endpoint of e other than v.
func (lg *localGraph) other(e LocalEdge, v LocalVertex) LocalVertex {
	slot := lg.edges[e]
	if slot.a == v {
		return slot.b
	}

	return slot.a
}

// vertexIDs returns every alive local vertex in ascending slot-index order.
func (lg *localGraph) vertexIDs() []LocalVertex {
	out := make([]LocalVertex, 0, lg.vertexCount)
	for i, slot := range lg.vertices {
		if slot.alive {
			out = append(out, LocalVertex(i))
		}
	}

	return out
}

// edgeIDs returns every alive local edge in ascending slot-index order.
func (lg *localGraph) edgeIDs() []LocalEdge {
	out := make([]LocalEdge, 0, lg.edgeCount)
	for i, slot := range lg.edges {
		if slot.alive {
			out = append(out, LocalEdge(i))
		}
	}

	return out
}

// incidentEdges returns every local edge touching v, sorted ascending by
// LocalEdge (deterministic; the adjacency map itself has no defined
// iteration order).
func (lg *localGraph) incidentEdges(v LocalVertex) []LocalEdge {
	out := make([]LocalEdge, 0, len(lg.vertices[v].adj))
	for _, e := range lg.vertices[v].adj {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// globalOf returns the GlobalVertex hosted at local vertex v.
func (lg *localGraph) globalOf(v LocalVertex) GlobalVertex {
	return lg.vertices[v].global
}

// vertexProps returns the property store belonging to local vertex v.
func (lg *localGraph) vertexProps(v LocalVertex) *propertyStore {
	return lg.vertices[v].props
}

// vertexObjects returns the object store belonging to local vertex v.
func (lg *localGraph) vertexObjects(v LocalVertex) *objectStore {
	return lg.vertices[v].objects
}

// edgeProps returns the property store belonging to local edge e (shared
// by every global edge the local edge aggregates).
func (lg *localGraph) edgeProps(e LocalEdge) *propertyStore {
	return lg.edges[e].props
}

// globalsOf returns the ordered list of global edges local edge e
// aggregates. The caller must not retain the returned slice across a
// mutation of e.
func (lg *localGraph) globalsOf(e LocalEdge) []globalEdgeEntry {
	return lg.edges[e].globals
}

// globalCount returns how many global edges local edge e aggregates.
func (lg *localGraph) globalCount(e LocalEdge) int {
	return len(lg.edges[e].globals)
}

// globalEdgeObjects returns the object store for the specific global edge
// entry identified by id within local edge e.
func (lg *localGraph) globalEdgeObjects(e LocalEdge, id GlobalVertex) (*objectStore, bool) {
	globals := lg.edges[e].globals
	for i := range globals {
		if globals[i].edge.ID == id {
			return globals[i].objects, true
		}
	}

	return nil, false
}

// appendGlobal appends entry to local edge e's globals list (used when a
// fresh global edge is added between two local vertices already joined by
// a local edge, and when merging aggregated lists during a move).
func (lg *localGraph) appendGlobal(e LocalEdge, entry globalEdgeEntry) {
	lg.edges[e].globals = append(lg.edges[e].globals, entry)
}

// removeGlobalsMatching removes, in place, every entry of e's globals list
// for which match returns true, returning the removed entries in their
// original order. It does not free the edge even if the resulting list is
// empty — the caller checks globalCount and calls freeEdge itself, since
// callers sometimes need to report the now-empty state before freeing.
func (lg *localGraph) removeGlobalsMatching(e LocalEdge, match func(GlobalEdge) bool) []globalEdgeEntry {
	slot := &lg.edges[e]
	kept := slot.globals[:0]
	var removed []globalEdgeEntry
	for _, entry := range slot.globals {
		if match(entry.edge) {
			removed = append(removed, entry)
		} else {
			kept = append(kept, entry)
		}
	}
	slot.globals = kept

	return removed
}

// stores returns the property and object stores currently attached to
// local vertex v, for transplanting onto a vertex in another cluster
// during a move.
func (lg *localGraph) stores(v LocalVertex) (*propertyStore, *objectStore) {
	return lg.vertices[v].props, lg.vertices[v].objects
}

// setStores overwrites local vertex v's property and object stores, used
// to complete a transplant started by stores on the source side.
func (lg *localGraph) setStores(v LocalVertex, props *propertyStore, objects *objectStore) {
	lg.vertices[v].props = props
	lg.vertices[v].objects = objects
}

// retarget rewrites edge e's endpoint old to new, updating both the slot
// and the adjacency maps. Used when a vertex move needs a local edge that
// used to run (old, w) to instead run (new, w), typically new being the
// cluster vertex that now represents old's new location.
func (lg *localGraph) retarget(e LocalEdge, old, next LocalVertex) {
	slot := &lg.edges[e]
	var w LocalVertex
	if slot.a == old {
		w = slot.b
		slot.a = next
	} else {
		w = slot.a
		slot.b = next
	}
	delete(lg.vertices[w].adj, old)
	lg.vertices[w].adj[next] = e
	lg.vertices[next].adj[w] = e
}
