// File: kind.go
// Role: typed tokens that identify one declared property or object "kind"
// for use with the stores in propstore.go/objectstore.go.
//
// The original cluster graph this package generalizes declared its
// property and object kinds as a compile-time mpl::vector of tag types, one
// per kind, each carrying its value type as a template parameter. Go has no
// variadic compile-time type lists, so a kind here is a *PropertyKey[V] or
// *ObjectKey[H] value: a unique token (by pointer identity) that also
// carries, via its type parameter, the exact value type that may be stored
// under it. Two distinct NewPropertyKey[V] calls with the same V and the
// same name are still two distinct kinds — identity, not name, is the key.
package clustergraph

// Kind is implemented by *PropertyKey[V] and *ObjectKey[H] so that a
// Schema (see schema.go) can hold a declared list of kinds without caring
// about each kind's value type.
type Kind interface {
	// Name returns the human-readable label the kind was declared with,
	// for diagnostics only — it plays no role in identity or lookup.
	Name() string
}

// PropertyKey identifies one declared property kind whose stored value has
// type V. Obtain one with NewPropertyKey; the returned pointer's identity
// is the lookup key, so keys must not be recreated per call site.
type PropertyKey[V any] struct {
	name string
}

// NewPropertyKey declares a new property kind named name, with value type
// V. Call once per logical kind (typically in a package-level var) and
// reuse the returned key everywhere that kind is read or written.
func NewPropertyKey[V any](name string) *PropertyKey[V] {
	return &PropertyKey[V]{name: name}
}

// Name implements Kind.
func (k *PropertyKey[V]) Name() string { return k.name }

// ObjectKey identifies one declared payload kind whose stored handle has
// type H. Obtain one with NewObjectKey; identity rules match PropertyKey.
type ObjectKey[H any] struct {
	name string
}

// NewObjectKey declares a new object (payload) kind named name, with
// handle type H.
func NewObjectKey[H any](name string) *ObjectKey[H] {
	return &ObjectKey[H]{name: name}
}

// Name implements Kind.
func (k *ObjectKey[H]) Name() string { return k.name }

// IndexKey is the mandatory dense-integer property kind injected into
// every vertex and edge property Schema that does not already declare it
// (spec: "init_index_maps" writes into this kind). Shared across all
// cluster graphs in a process; the stored value is private to each entity's
// own property store.
var IndexKey = NewPropertyKey[int]("index")

// ChangedKey is the mandatory boolean property kind injected into every
// cluster property Schema that does not already declare it.
var ChangedKey = NewPropertyKey[bool]("changed")
