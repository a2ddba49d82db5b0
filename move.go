// File: move.go
// Role: moving a vertex across a cluster boundary while preserving its
// external connectivity — the one structural operation spec calls out as
// subtle enough to need its own section. MoveToSubcluster and
// MoveToParent are exact inverses of each other.
package clustergraph

// otherEndpoint returns ge's endpoint other than g.
func otherEndpoint(ge GlobalEdge, g GlobalVertex) GlobalVertex {
	if ge.Source == g {
		return ge.Target
	}

	return ge.Source
}

// MoveToSubcluster moves local vertex v out of c and into child, which
// must be a direct child of c. v's global id, properties, and objects
// move with it; if v itself hosted a nested cluster, that cluster is
// re-parented too. Every local edge in c that touched v is rewired:
// edges whose other endpoint already lived inside child become internal
// edges of child; every other edge is redirected to run from child's
// representing vertex in c instead of from v, merging with any local
// edge that already ran there.
//
// Complexity: O(d), d = v's incident-edge count in c.
func (c *Cluster) MoveToSubcluster(v LocalVertex, child *Cluster) (LocalVertex, error) {
	d, ok := c.VertexOfCluster(child)
	if !ok {
		return invalidLocalVertex, ErrNotDirectChild
	}
	if !c.local.vertexAlive(v) {
		return invalidLocalVertex, ErrVertexNotFound
	}

	g := c.local.globalOf(v)

	vNext := child.local.allocVertex(g)
	child.globalIndex[g] = vNext
	props, objects := c.local.stores(v)
	child.local.setStores(vNext, props, objects)

	if grandchild, ok := c.clusters[v]; ok {
		child.clusters[vNext] = grandchild
		grandchild.parent = child
		grandchild.parentVertex = vNext
		delete(c.clusters, v)
	}

	for _, e := range c.local.incidentEdges(v) {
		w := c.local.other(e, v)

		if w == d {
			for _, entry := range c.local.globalsOf(e) {
				x := otherEndpoint(entry.edge, g)
				lx, ok := child.ContainingVertex(x)
				if ok && lx == vNext {
					lx, ok = child.ContainingVertex(entry.edge.Target)
				}
				if !ok {
					continue
				}
				if target, ok := child.local.findEdge(vNext, lx); ok {
					child.local.appendGlobal(target, entry)
					child.globalEdgeIndex[entry.edge.ID] = target
				} else {
					newEdge := child.local.allocEdge(vNext, lx, entry)
					child.globalEdgeIndex[entry.edge.ID] = newEdge
				}
				delete(c.globalEdgeIndex, entry.edge.ID)
			}
			c.local.freeEdge(e)

			continue
		}

		if existing, ok := c.local.findEdge(d, w); ok && existing != e {
			for _, entry := range c.local.globalsOf(e) {
				c.local.appendGlobal(existing, entry)
				c.globalEdgeIndex[entry.edge.ID] = existing
			}
			c.local.freeEdge(e)
		} else {
			c.local.retarget(e, v, d)
		}
	}

	delete(c.globalIndex, g)
	c.local.freeVertex(v)
	c.setChanged()
	child.setChanged()

	return vNext, nil
}

// MoveToParent moves local vertex v out of d (the receiver) and into d's
// parent, the exact inverse of MoveToSubcluster: edges wholly internal to
// d that touched v become, in the parent, an aggregate edge between v's
// new handle and d's own representing vertex; entries aggregated on that
// representing vertex's edges in the parent whose d-side participant was
// specifically v are split out onto v's new handle.
//
// Complexity: O(d + e), d = v's incident-edge count in the receiver, e =
// the parent's representing vertex's incident-edge count.
func (d *Cluster) MoveToParent(v LocalVertex) (LocalVertex, error) {
	c, ok := d.Parent()
	if !ok {
		return invalidLocalVertex, ErrIsRoot
	}
	if !d.local.vertexAlive(v) {
		return invalidLocalVertex, ErrVertexNotFound
	}
	dLocal, ok := c.VertexOfCluster(d)
	if !ok {
		return invalidLocalVertex, ErrNotDirectChild
	}

	g := d.local.globalOf(v)

	vNext := c.local.allocVertex(g)
	c.globalIndex[g] = vNext
	props, objects := d.local.stores(v)
	c.local.setStores(vNext, props, objects)

	if grandchild, ok := d.clusters[v]; ok {
		c.clusters[vNext] = grandchild
		grandchild.parent = c
		grandchild.parentVertex = vNext
		delete(d.clusters, v)
	}

	incidentOnRepresentative := c.local.incidentEdges(dLocal)

	for _, e := range d.local.incidentEdges(v) {
		for _, entry := range d.local.globalsOf(e) {
			delete(d.globalEdgeIndex, entry.edge.ID)
			if target, ok := c.local.findEdge(vNext, dLocal); ok {
				c.local.appendGlobal(target, entry)
				c.globalEdgeIndex[entry.edge.ID] = target
			} else {
				newEdge := c.local.allocEdge(vNext, dLocal, entry)
				c.globalEdgeIndex[entry.edge.ID] = newEdge
			}
		}
		d.local.freeEdge(e)
	}

	for _, e := range incidentOnRepresentative {
		w := c.local.other(e, dLocal)
		removed := c.local.removeGlobalsMatching(e, func(ge GlobalEdge) bool {
			ls, _ := c.ContainingVertex(ge.Source)
			lt, _ := c.ContainingVertex(ge.Target)

			return ls == vNext || lt == vNext
		})
		for _, entry := range removed {
			if target, ok := c.local.findEdge(vNext, w); ok {
				c.local.appendGlobal(target, entry)
				c.globalEdgeIndex[entry.edge.ID] = target
			} else {
				newEdge := c.local.allocEdge(vNext, w, entry)
				c.globalEdgeIndex[entry.edge.ID] = newEdge
			}
		}
		if c.local.globalCount(e) == 0 {
			c.local.freeEdge(e)
		}
	}

	delete(d.globalIndex, g)
	d.local.freeVertex(v)
	c.setChanged()
	d.setChanged()

	return vNext, nil
}
