// File: resolve.go
// Role: translating a tree-wide GlobalVertex/GlobalEdge identity into the
// LocalVertex/LocalEdge handle that currently denotes it, at one cluster
// or across the whole subtree it roots.
package clustergraph

// ContainingVertex returns the LocalVertex, local to c, that denotes g:
// either g's own local vertex (if g is hosted directly in c), or the
// cluster-vertex on the path from c down to whichever descendant actually
// hosts g. It fails only if g does not exist anywhere in the subtree
// rooted at c.
//
// Complexity: O(n) worst case over the subtree rooted at c.
func (c *Cluster) ContainingVertex(g GlobalVertex) (LocalVertex, bool) {
	if lv, ok := c.globalIndex[g]; ok {
		return lv, true
	}
	for childLV, child := range c.clusters {
		if child.hostsGlobalVertex(g) {
			return childLV, true
		}
	}

	return invalidLocalVertex, false
}

// hostsGlobalVertex reports whether g is hosted anywhere in the subtree
// rooted at c, including c itself.
func (c *Cluster) hostsGlobalVertex(g GlobalVertex) bool {
	if _, ok := c.globalIndex[g]; ok {
		return true
	}
	for _, child := range c.clusters {
		if child.hostsGlobalVertex(g) {
			return true
		}
	}

	return false
}

// ContainingVertexGraph descends into subclusters and returns the deepest
// cluster that actually hosts g as a plain (non-cluster) vertex, together
// with g's LocalVertex in that cluster.
//
// Complexity: O(n) worst case over the subtree rooted at c.
func (c *Cluster) ContainingVertexGraph(g GlobalVertex) (LocalVertex, *Cluster, bool) {
	if lv, ok := c.globalIndex[g]; ok {
		return lv, c, true
	}
	for _, child := range c.clusters {
		if lv, cluster, ok := child.ContainingVertexGraph(g); ok {
			return lv, cluster, true
		}
	}

	return invalidLocalVertex, nil, false
}

// GetLocalVertex is ContainingVertex under the name the rest of the
// Get* accessor family uses (see GetLocalEdge): the LocalVertex, local to
// c, that denotes g, without telling the caller which cluster actually
// hosts it.
//
// Complexity: O(n) worst case over the subtree rooted at c.
func (c *Cluster) GetLocalVertex(g GlobalVertex) (LocalVertex, bool) {
	return c.ContainingVertex(g)
}

// GetLocalVertexGraph is ContainingVertexGraph under the Get* accessor
// family's name: the LocalVertex and the specific cluster that directly
// hosts g, anywhere in c's subtree.
//
// Complexity: O(n) worst case over the subtree rooted at c.
func (c *Cluster) GetLocalVertexGraph(g GlobalVertex) (LocalVertex, *Cluster, bool) {
	return c.ContainingVertexGraph(g)
}

// ContainingEdge returns the LocalEdge, local to c, whose aggregated
// globals list contains ge. Unlike ContainingVertex it does not descend
// into subclusters: a global edge is only ever aggregated into a local
// edge at the cluster level where its two endpoints first resolve to
// distinct local vertices, and that level is exactly where the caller
// must look — descending further would never find it, since no deeper
// cluster has both endpoints distinct (one or both would be outside it).
//
// Complexity: O(1) via the cluster's own global-edge index.
func (c *Cluster) ContainingEdge(ge GlobalEdge) (LocalEdge, bool) {
	le, ok := c.globalEdgeIndex[ge.ID]

	return le, ok
}

// ContainingEdgeGraph searches c and then, recursively, every descendant
// cluster for the local edge aggregating ge. Provided for symmetry with
// ContainingVertexGraph and for callers that do not already know which
// cluster hosts ge.
//
// Complexity: O(number of clusters in the subtree) worst case.
func (c *Cluster) ContainingEdgeGraph(ge GlobalEdge) (LocalEdge, *Cluster, bool) {
	if le, ok := c.globalEdgeIndex[ge.ID]; ok {
		return le, c, true
	}
	for _, child := range c.clusters {
		if le, cluster, ok := child.ContainingEdgeGraph(ge); ok {
			return le, cluster, true
		}
	}

	return invalidLocalEdge, nil, false
}
