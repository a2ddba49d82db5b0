// File: clone.go
// Role: deep-structural copy of a cluster tree into a fresh destination,
// preserving every global id and the cluster hierarchy, with payload
// handles routed through a caller-supplied mapping functor.
package clustergraph

// CopyInto deep-copies c's structure — every vertex, edge, and nested
// cluster, at every level — into dest, which should be freshly
// constructed and empty. Global ids are preserved exactly; properties
// are value-cloned; every stored object is passed through f to produce
// the destination's copy (f nil shares the same handle). The whole copy
// runs with dest's copy mode on, so it does not spuriously mark any
// destination cluster changed.
//
// Complexity: O(n + m) over c's subtree.
func (c *Cluster) CopyInto(dest *Cluster, f ObjectFunc) error {
	dest.SetCopyMode(true)
	err := c.copyInto(dest, f)
	dest.SetCopyMode(false)

	return err
}

func (c *Cluster) copyInto(dest *Cluster, f ObjectFunc) error {
	dest.props = c.props.clone()
	SetProperty(dest.props, ChangedKey, false)

	for _, v := range c.local.vertexIDs() {
		g := c.local.globalOf(v)

		if child, ok := c.clusters[v]; ok {
			destChild, _, err := dest.createClusterWithID(g)
			if err != nil {
				return err
			}
			destChild.SetCopyMode(true)
			if err := child.copyInto(destChild, f); err != nil {
				return err
			}
			destChild.SetCopyMode(false)

			continue
		}

		destV, err := dest.AddVertexWithID(g)
		if err != nil {
			return err
		}
		props, objects := c.local.stores(v)
		dest.local.setStores(destV, props.clone(), objects.cloneWith(f))
	}

	for _, e := range c.local.edgeIDs() {
		a, b := c.local.endpoints(e)
		da, ok1 := dest.globalIndex[c.local.globalOf(a)]
		db, ok2 := dest.globalIndex[c.local.globalOf(b)]
		if !ok1 || !ok2 {
			continue
		}

		for _, entry := range c.local.globalsOf(e) {
			next := globalEdgeEntry{edge: entry.edge, objects: entry.objects.cloneWith(f)}
			if target, ok := dest.local.findEdge(da, db); ok {
				dest.local.appendGlobal(target, next)
				dest.globalEdgeIndex[next.edge.ID] = target
			} else {
				newEdge := dest.local.allocEdge(da, db, next)
				dest.globalEdgeIndex[next.edge.ID] = newEdge
			}
		}
	}

	return nil
}

// createClusterWithID is CreateCluster with an adopted global id instead
// of a freshly generated one, used by CopyInto to preserve cluster
// identity across the copy.
func (c *Cluster) createClusterWithID(g GlobalVertex) (*Cluster, LocalVertex, error) {
	if !g.Valid() {
		return nil, invalidLocalVertex, ErrInvalidID
	}
	c.alloc.SetCount(int64(g))
	v := c.local.allocVertex(g)
	c.globalIndex[g] = v

	child := newChild(c)
	child.parentVertex = v
	c.clusters[v] = child
	c.setChanged()

	return child, v, nil
}
