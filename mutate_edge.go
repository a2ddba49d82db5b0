// File: mutate_edge.go
// Role: local-edge creation/removal, the global-scoped variant that can
// recurse into subclusters, and the property/object accessors specific
// to edges (per local edge for properties, per global edge for objects).
package clustergraph

// AddEdge creates (or appends to) a local edge between local vertices u
// and v, both of which must already exist in c, be distinct, and not
// host a nested cluster — creating an edge directly between cluster
// vertices via this API is rejected; use AddEdgeGlobal, which resolves
// into the subcluster(s) involved. If a local edge between u and v
// already exists, a fresh global edge is appended to its list and its
// existing handle is returned; otherwise a new local edge is created.
//
// Complexity: O(1).
func (c *Cluster) AddEdge(u, v LocalVertex) (LocalEdge, GlobalEdge, error) {
	if u == v {
		return invalidLocalEdge, GlobalEdge{}, ErrSameVertex
	}
	if !c.local.vertexAlive(u) || !c.local.vertexAlive(v) {
		return invalidLocalEdge, GlobalEdge{}, ErrVertexNotFound
	}
	if c.IsCluster(u) || c.IsCluster(v) {
		return invalidLocalEdge, GlobalEdge{}, ErrIsCluster
	}

	id, err := c.alloc.Generate()
	if err != nil {
		return invalidLocalEdge, GlobalEdge{}, err
	}
	ge := GlobalEdge{Source: c.local.globalOf(u), Target: c.local.globalOf(v), ID: GlobalVertex(id)}
	entry := globalEdgeEntry{edge: ge, objects: newObjectStore()}

	e, ok := c.local.findEdge(u, v)
	if ok {
		c.local.appendGlobal(e, entry)
	} else {
		e = c.local.allocEdge(u, v, entry)
	}
	c.globalEdgeIndex[ge.ID] = e
	c.setChanged()

	return e, ge, nil
}

// AddEdgeGlobal creates a global edge between global vertices s and t,
// which must both already exist somewhere in c's subtree. The engine
// resolves each to its containing local vertex in c; if those coincide
// (both route through the same subcluster) the call recurses into that
// subcluster instead of creating anything in c. scope reports whether
// the returned LocalEdge is valid in c itself (false when the edge was
// actually created in a descendant).
//
// Complexity: O(n) per level descended for resolving s and t (n = size
// of that level's subtree), O(1) at the creating level.
func (c *Cluster) AddEdgeGlobal(s, t GlobalVertex) (LocalEdge, GlobalEdge, bool, error) {
	e, ge, host, err := c.addEdgeGlobalAt(s, t)
	if err != nil {
		return invalidLocalEdge, GlobalEdge{}, false, err
	}

	return e, ge, host == c, nil
}

func (c *Cluster) addEdgeGlobalAt(s, t GlobalVertex) (LocalEdge, GlobalEdge, *Cluster, error) {
	lu, ok := c.ContainingVertex(s)
	if !ok {
		return invalidLocalEdge, GlobalEdge{}, nil, ErrNotInSubtree
	}
	lv, ok := c.ContainingVertex(t)
	if !ok {
		return invalidLocalEdge, GlobalEdge{}, nil, ErrNotInSubtree
	}

	if lu == lv {
		if s == t {
			return invalidLocalEdge, GlobalEdge{}, nil, ErrSameVertex
		}
		child, ok := c.ClusterAt(lu)
		if !ok {
			return invalidLocalEdge, GlobalEdge{}, nil, ErrSameVertex
		}

		return child.addEdgeGlobalAt(s, t)
	}

	id, err := c.alloc.Generate()
	if err != nil {
		return invalidLocalEdge, GlobalEdge{}, nil, err
	}
	ge := GlobalEdge{Source: s, Target: t, ID: GlobalVertex(id)}
	entry := globalEdgeEntry{edge: ge, objects: newObjectStore()}

	e, ok := c.local.findEdge(lu, lv)
	if ok {
		c.local.appendGlobal(e, entry)
	} else {
		e = c.local.allocEdge(lu, lv, entry)
	}
	c.globalEdgeIndex[ge.ID] = e
	c.setChanged()

	return e, ge, c, nil
}

// RemoveEdgeGlobal locates, anywhere in c's subtree, the local edge
// aggregating ge, drops that single entry, and removes the local edge
// entirely if the list becomes empty.
//
// Complexity: O(number of clusters in the subtree) worst case.
func (c *Cluster) RemoveEdgeGlobal(ge GlobalEdge) error {
	e, host, ok := c.ContainingEdgeGraph(ge)
	if !ok {
		return ErrEdgeNotFound
	}

	removed := host.local.removeGlobalsMatching(e, func(x GlobalEdge) bool { return x.ID == ge.ID })
	if len(removed) == 0 {
		return ErrEdgeNotFound
	}
	delete(host.globalEdgeIndex, ge.ID)
	if host.local.globalCount(e) == 0 {
		host.local.freeEdge(e)
	}
	host.setChanged()

	return nil
}

// RemoveEdge invokes f once per global edge aggregated on local edge e,
// then removes e.
//
// Complexity: O(globals aggregated on e).
func (c *Cluster) RemoveEdge(e LocalEdge, f EdgeFunc) error {
	if !c.local.edgeAlive(e) {
		return ErrEdgeNotFound
	}

	for _, entry := range c.local.globalsOf(e) {
		delete(c.globalEdgeIndex, entry.edge.ID)
		f.call(entry.edge)
	}
	c.local.freeEdge(e)
	c.setChanged()

	return nil
}

// Edge returns the local edge connecting u and v directly in c, if any.
//
// Complexity: O(1).
func (c *Cluster) Edge(u, v LocalVertex) (LocalEdge, bool) {
	return c.local.findEdge(u, v)
}

// GetLocalEdge returns the local edge in c that aggregates ge, without
// descending into subclusters.
//
// Complexity: O(1).
func (c *Cluster) GetLocalEdge(ge GlobalEdge) (LocalEdge, bool) {
	return c.ContainingEdge(ge)
}

// GetLocalEdgeGraph returns the local edge and hosting cluster that
// aggregate ge, anywhere in c's subtree.
//
// Complexity: O(number of clusters in the subtree) worst case.
func (c *Cluster) GetLocalEdgeGraph(ge GlobalEdge) (LocalEdge, *Cluster, bool) {
	return c.ContainingEdgeGraph(ge)
}

// GlobalEdgesOf returns the ordered list of global edges local edge e
// aggregates.
//
// Complexity: O(k), k = GlobalEdgeCount(e).
func (c *Cluster) GlobalEdgesOf(e LocalEdge) []GlobalEdge {
	globals := c.local.globalsOf(e)
	out := make([]GlobalEdge, len(globals))
	for i, entry := range globals {
		out[i] = entry.edge
	}

	return out
}

// GlobalEdgeCount returns how many global edges local edge e aggregates.
//
// Complexity: O(1).
func (c *Cluster) GlobalEdgeCount(e LocalEdge) int {
	return c.local.globalCount(e)
}

// EdgeProperty returns local edge e's value for k. Edge properties are
// per local edge, shared by every global edge it aggregates.
func EdgeProperty[V any](c *Cluster, e LocalEdge, k *PropertyKey[V]) V {
	return GetProperty(c.local.edgeProps(e), k)
}

// SetEdgeProperty sets local edge e's value for k.
func SetEdgeProperty[V any](c *Cluster, e LocalEdge, k *PropertyKey[V], v V) {
	SetProperty(c.local.edgeProps(e), k, v)
}

// EdgeObject returns the payload stored under k on local edge e's first
// (index 0) aggregated global edge — a convenience shortcut for the
// common single-global-edge case. Use GlobalEdgeObject to address a
// specific global edge when e aggregates more than one.
func EdgeObject[H any](c *Cluster, e LocalEdge, k *ObjectKey[H]) (H, bool) {
	globals := c.local.globalsOf(e)
	if len(globals) == 0 {
		var zero H

		return zero, false
	}

	return GetObject(globals[0].objects, k)
}

// SetEdgeObject installs h under k on local edge e's first aggregated
// global edge. Reports false if e aggregates no global edge (should not
// happen for a live edge, per invariant 4).
func SetEdgeObject[H any](c *Cluster, e LocalEdge, k *ObjectKey[H], h H) bool {
	globals := c.local.globalsOf(e)
	if len(globals) == 0 {
		return false
	}
	SetObject(globals[0].objects, k, h)

	return true
}

// GlobalEdgeObject returns the payload stored under k on the specific
// global edge id within local edge e.
func GlobalEdgeObject[H any](c *Cluster, e LocalEdge, id GlobalVertex, k *ObjectKey[H]) (H, bool) {
	store, ok := c.local.globalEdgeObjects(e, id)
	if !ok {
		var zero H

		return zero, false
	}

	return GetObject(store, k)
}

// SetGlobalEdgeObject installs h under k on the specific global edge id
// within local edge e.
func SetGlobalEdgeObject[H any](c *Cluster, e LocalEdge, id GlobalVertex, k *ObjectKey[H], h H) bool {
	store, ok := c.local.globalEdgeObjects(e, id)
	if !ok {
		return false
	}
	SetObject(store, k, h)

	return true
}

// Edges returns every local edge directly hosted in c, in ascending
// slot-index order.
//
// Complexity: O(m).
func (c *Cluster) Edges() []LocalEdge {
	return c.local.edgeIDs()
}

// IncidentEdges returns every local edge touching local vertex v in c,
// ascending by LocalEdge.
//
// Complexity: O(d log d), d = v's incident-edge count.
func (c *Cluster) IncidentEdges(v LocalVertex) []LocalEdge {
	return c.local.incidentEdges(v)
}
