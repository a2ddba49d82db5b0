// File: index.go
// Role: dense 0..n-1 index assignment for algorithms that need array-style
// access into a cluster's list-backed vertex/edge storage.
package clustergraph

// InitIndexMaps assigns a dense 0..n-1 integer, in ascending slot-index
// order, to every local vertex and every local edge directly hosted in
// c, writing it into the mandatory index property. It does not descend
// into nested clusters — each cluster indexes only its own local graph.
//
// Complexity: O(n + m).
func (c *Cluster) InitIndexMaps() {
	for i, v := range c.local.vertexIDs() {
		SetProperty(c.local.vertexProps(v), IndexKey, i)
	}
	for i, e := range c.local.edgeIDs() {
		SetProperty(c.local.edgeProps(e), IndexKey, i)
	}
}
