// File: mutate_vertex.go
// Role: vertex lifecycle — creation (fresh or adopted global id) and
// removal, including the upstream aggregated-edge cleanup a global-keyed
// removal must perform at every ancestor cluster.
package clustergraph

// AddVertex allocates a fresh global id and creates a local vertex for it
// in c. Sets c's changed flag.
//
// Complexity: O(1).
func (c *Cluster) AddVertex() (LocalVertex, GlobalVertex, error) {
	id, err := c.alloc.Generate()
	if err != nil {
		return invalidLocalVertex, 0, err
	}
	g := GlobalVertex(id)
	lv := c.local.allocVertex(g)
	c.globalIndex[g] = lv
	c.setChanged()

	return lv, g, nil
}

// AddVertexWithID adopts a caller-supplied global id g, creating a local
// vertex for it in c and fast-forwarding the tree's allocator so g is
// never reissued. g must not be a reserved sentinel.
//
// Complexity: O(1).
func (c *Cluster) AddVertexWithID(g GlobalVertex) (LocalVertex, error) {
	if !g.Valid() {
		return invalidLocalVertex, ErrInvalidID
	}
	c.alloc.SetCount(int64(g))
	lv := c.local.allocVertex(g)
	c.globalIndex[g] = lv
	c.setChanged()

	return lv, nil
}

// RemoveVertex removes local vertex v from c along with every local edge
// incident to it, invoking f once per global edge dropped in the
// process. It does not special-case cluster vertices: removing the local
// vertex that hosts a nested cluster orphans that cluster without
// destroying it — callers must use RemoveClusterAt for that.
//
// Complexity: O(d) where d is v's incident-edge count.
func (c *Cluster) RemoveVertex(v LocalVertex, f EdgeFunc) error {
	if !c.local.vertexAlive(v) {
		return ErrVertexNotFound
	}

	for _, e := range c.local.incidentEdges(v) {
		for _, entry := range c.local.globalsOf(e) {
			delete(c.globalEdgeIndex, entry.edge.ID)
			f.call(entry.edge)
		}
		c.local.freeEdge(e)
	}

	g := c.local.globalOf(v)
	delete(c.globalIndex, g)
	c.local.freeVertex(v)
	c.setChanged()

	return nil
}

// RemoveVertexGlobal locates the cluster hosting global vertex g within
// c's subtree, removes it there via RemoveVertex, and additionally
// strips g's entries out of every aggregated local edge at each ancestor
// cluster between the host and c (inclusive of c), invoking f for each
// such entry too. This is what keeps upstream aggregation consistent:
// an edge between g and a vertex outside g's host cluster is represented,
// at some ancestor, as one entry in a local edge between cluster
// vertices — removing g must find and drop that entry even though g's
// own local edges never touched that ancestor directly.
//
// Complexity: O(depth * fan-out) for the ancestor sweep, plus RemoveVertex's cost at the host.
func (c *Cluster) RemoveVertexGlobal(g GlobalVertex, f EdgeFunc) error {
	lv, host, ok := c.ContainingVertexGraph(g)
	if !ok {
		return ErrNotInSubtree
	}

	if err := host.RemoveVertex(lv, f); err != nil {
		return err
	}

	cur := host
	for cur != c {
		parent, ok := cur.Parent()
		if !ok {
			break
		}
		p, ok := parent.VertexOfCluster(cur)
		if !ok {
			break
		}

		touched := false
		for _, e := range parent.local.incidentEdges(p) {
			removed := parent.local.removeGlobalsMatching(e, func(ge GlobalEdge) bool {
				return ge.Source == g || ge.Target == g
			})
			for _, entry := range removed {
				delete(parent.globalEdgeIndex, entry.edge.ID)
				f.call(entry.edge)
				touched = true
			}
			if parent.local.globalCount(e) == 0 {
				parent.local.freeEdge(e)
			}
		}
		if touched {
			parent.setChanged()
		}

		cur = parent
	}

	return nil
}

// VertexProperty returns local vertex v's value for k, default-
// constructing it on first access.
func VertexProperty[V any](c *Cluster, v LocalVertex, k *PropertyKey[V]) V {
	return GetProperty(c.local.vertexProps(v), k)
}

// SetVertexProperty sets local vertex v's value for k.
func SetVertexProperty[V any](c *Cluster, v LocalVertex, k *PropertyKey[V], val V) {
	SetProperty(c.local.vertexProps(v), k, val)
}

// VertexObject returns the payload local vertex v holds under k, if any.
func VertexObject[H any](c *Cluster, v LocalVertex, k *ObjectKey[H]) (H, bool) {
	return GetObject(c.local.vertexObjects(v), k)
}

// SetVertexObject installs h as local vertex v's payload for kind k.
func SetVertexObject[H any](c *Cluster, v LocalVertex, k *ObjectKey[H], h H) {
	SetObject(c.local.vertexObjects(v), k, h)
}

// GlobalOf returns the GlobalVertex hosted at local vertex v in c.
func (c *Cluster) GlobalOf(v LocalVertex) GlobalVertex {
	return c.local.globalOf(v)
}

// Vertices returns every local vertex directly hosted in c (including
// cluster vertices), in ascending slot-index order.
//
// Complexity: O(n).
func (c *Cluster) Vertices() []LocalVertex {
	return c.local.vertexIDs()
}
