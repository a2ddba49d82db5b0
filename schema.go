// File: schema.go
// Role: the declared kind lists a Cluster tree is instantiated with.
package clustergraph

// Schema declares, once per cluster tree, which property and object kinds
// that tree's vertices, edges, and clusters are expected to carry. It is a
// documentation/validation surface, not a storage allocation: the
// underlying stores (propstore.go/objectstore.go) are lazily keyed maps and
// accept any Kind access regardless of Schema membership. NewRoot uses
// Schema only to inject the two mandatory kinds (IndexKey, ChangedKey) if
// the caller did not already declare them.
type Schema struct {
	// VertexProps lists the declared vertex property kinds.
	VertexProps []Kind
	// EdgeProps lists the declared local-edge property kinds.
	EdgeProps []Kind
	// ClusterProps lists the declared cluster property kinds.
	ClusterProps []Kind
	// Objects lists the declared payload kinds storable on vertices and
	// (per global edge) on edges.
	Objects []Kind
}

// ensureKind appends want to kinds if no element of kinds already equals
// want by identity, returning the possibly-extended slice.
func ensureKind(kinds []Kind, want Kind) []Kind {
	for _, k := range kinds {
		if k == want {
			return kinds
		}
	}

	return append(kinds, want)
}

// normalized returns a copy of s with IndexKey guaranteed present in
// VertexProps and EdgeProps, and ChangedKey guaranteed present in
// ClusterProps, per spec: "a mandatory index kind is injected if absent"
// and "changed kind... if the caller already included changed, it is not
// duplicated".
func (s Schema) normalized() Schema {
	return Schema{
		VertexProps:  ensureKind(append([]Kind{}, s.VertexProps...), IndexKey),
		EdgeProps:    ensureKind(append([]Kind{}, s.EdgeProps...), IndexKey),
		ClusterProps: ensureKind(append([]Kind{}, s.ClusterProps...), ChangedKey),
		Objects:      append([]Kind{}, s.Objects...),
	}
}
