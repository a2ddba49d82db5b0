// File: mutate_cluster.go
// Role: nested-cluster creation and the recursive cluster-removal
// engine (by local vertex, by child reference, or all at once).
package clustergraph

// CreateCluster allocates a fresh local vertex in c to represent a new
// nested cluster, constructs that cluster sharing c's identifier
// allocator and schema, and records the mapping both ways.
//
// Complexity: O(1).
func (c *Cluster) CreateCluster() (*Cluster, LocalVertex, error) {
	id, err := c.alloc.Generate()
	if err != nil {
		return nil, invalidLocalVertex, err
	}
	g := GlobalVertex(id)
	v := c.local.allocVertex(g)
	c.globalIndex[g] = v

	child := newChild(c)
	child.parentVertex = v
	c.clusters[v] = child
	c.setChanged()

	return child, v, nil
}

// RemoveClusterAt destroys the nested cluster hosted at local vertex v
// in c, recursively: cb fires on every descendant cluster (before that
// cluster's own contents), on every global vertex removed, and on every
// global edge dropped — including edges aggregated above the cluster
// being destroyed, at every ancestor level up to and including c. After
// the recursive teardown, v itself is removed from c.
//
// Complexity: O(size of the destroyed subtree plus the ancestor sweep
// RemoveVertexGlobal performs for each of its vertices).
func (c *Cluster) RemoveClusterAt(v LocalVertex, cb RemovalCallbacks) error {
	return removeClusterAt(c, c, v, cb)
}

// RemoveClusterChild is RemoveClusterAt addressed by child cluster
// reference instead of local vertex; child must be a direct child of c.
func (c *Cluster) RemoveClusterChild(child *Cluster, cb RemovalCallbacks) error {
	v, ok := c.VertexOfCluster(child)
	if !ok {
		return ErrNotDirectChild
	}

	return removeClusterAt(c, c, v, cb)
}

// ClearClusters removes every direct child cluster of c.
func (c *Cluster) ClearClusters(cb RemovalCallbacks) error {
	for _, v := range c.Clusters() {
		if err := removeClusterAt(c, c, v, cb); err != nil {
			return err
		}
	}

	return nil
}

// removeClusterAt does the real work of cluster removal. boundary is the
// cluster the public call was originally made on — it stays fixed across
// the recursion so that RemoveVertexGlobal's ancestor sweep always walks
// up to the right level, regardless of how deep v sits. parent is the
// cluster that directly hosts v (the receiver at this level of the
// recursion); it changes on every recursive call.
func removeClusterAt(boundary, parent *Cluster, v LocalVertex, cb RemovalCallbacks) error {
	child, ok := parent.clusters[v]
	if !ok {
		return ErrNotCluster
	}

	cb.cluster(child)

	for _, gv := range child.Clusters() {
		if err := removeClusterAt(boundary, child, gv, cb); err != nil {
			return err
		}
	}

	for _, lv := range child.local.vertexIDs() {
		g := child.local.globalOf(lv)
		if err := boundary.RemoveVertexGlobal(g, EdgeFunc(cb.edge)); err != nil {
			return err
		}
		cb.vertex(g)
	}

	delete(parent.clusters, v)

	return parent.RemoveVertex(v, EdgeFunc(cb.edge))
}
