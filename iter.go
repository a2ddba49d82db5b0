// File: iter.go
// Role: read-only traversal helpers — global vertex listing and the
// typed/untyped "apply to every payload of a kind" functor.
package clustergraph

// GlobalVertices returns the global id of every local vertex directly
// hosted in c (including cluster vertices), sorted ascending. Does not
// descend into nested clusters; call it on each cluster returned by
// Clusters to walk the whole tree.
//
// Complexity: O(n log n).
func (c *Cluster) GlobalVertices() []GlobalVertex {
	ids := c.local.vertexIDs()
	out := make([]GlobalVertex, len(ids))
	for i, v := range ids {
		out[i] = c.local.globalOf(v)
	}
	sortGlobalVertices(out)

	return out
}

// ForEach applies fn to every vertex in c that holds a payload under k,
// passing that vertex's global id and the payload. If recursive is true
// it also visits every descendant cluster, in Clusters order.
//
// Complexity: O(n) per cluster visited.
func ForEach[H any](c *Cluster, k *ObjectKey[H], recursive bool, fn func(GlobalVertex, H)) {
	for _, v := range c.local.vertexIDs() {
		if h, ok := GetObject(c.local.vertexObjects(v), k); ok {
			fn(c.local.globalOf(v), h)
		}
	}
	if !recursive {
		return
	}
	for _, lv := range c.Clusters() {
		ForEach(c.clusters[lv], k, true, fn)
	}
}

// ForEachObject is ForEach's untyped counterpart, for callers that only
// hold a Kind token (not its compile-time value type H).
//
// Complexity: O(n) per cluster visited.
func ForEachObject(c *Cluster, k Kind, recursive bool, fn func(GlobalVertex, any)) {
	for _, v := range c.local.vertexIDs() {
		if val, ok := c.local.vertexObjects(v).getRaw(k); ok {
			fn(c.local.globalOf(v), val)
		}
	}
	if !recursive {
		return
	}
	for _, lv := range c.Clusters() {
		ForEachObject(c.clusters[lv], k, true, fn)
	}
}
