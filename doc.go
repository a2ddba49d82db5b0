// Package clustergraph provides the hierarchical cluster graph used by a
// dimensional constraint solver to hold geometric entities as vertices and
// constraints as edges, with recursive clustering so that rigid subsystems
// can be isolated, solved independently, and re-composed.
//
// A Cluster is both an undirected graph of local vertices/edges and, when
// reached from a parent, itself a vertex of that parent graph. Entities
// carry two identities: a LocalVertex/LocalEdge, a positional handle valid
// only inside the cluster that currently hosts it, and a GlobalVertex/
// GlobalEdge, a tree-wide stable integer identifier that survives moves,
// clones, and structural rearrangement. A local edge aggregates an ordered,
// non-empty list of global edges; this is what lets a parent cluster
// represent, with a single local edge, every logical constraint that
// crosses the boundary between two child subclusters.
//
// Why use clustergraph.Cluster?
//
//   - Stable identity — GlobalVertex/GlobalEdge never change value across
//     MoveToSubcluster/MoveToParent/CopyInto, so callers can serialize by
//     global id without consulting local handles.
//   - Typed heterogeneous storage — PropertyKey[V]/ObjectKey[H] give every
//     vertex, edge, and cluster a compile-time-typed attribute bag, and every
//     vertex and global edge a payload slot table, without the graph core
//     knowing what a constraint solver actually stores there.
//   - Recursive decomposition — CreateCluster/RemoveClusterAt/
//     MoveToSubcluster/MoveToParent let a caller build and rebalance a
//     cluster tree while every incident edge is rewired consistently.
//
// Concurrency:
//
// A Cluster tree is not internally synchronized. The expected owner is a
// single-threaded solver pipeline; any mutation requires exclusive access
// to the whole tree, because moves and removals touch multiple clusters at
// once. Concurrent read-only access is safe only across a quiescent tree.
//
// Core types:
//
//	GlobalVertex, GlobalEdge    // tree-wide stable identifiers
//	LocalVertex, LocalEdge      // positional handles, cluster-local
//	Cluster                     // the graph + cluster-tree node
//	IDAllocator                 // monotone id issuance, shared per tree
//	PropertyKey[V], ObjectKey[H] // typed heterogeneous storage tokens
//
// Core operations (see each method's doc comment for the full contract):
//
//	AddVertex, AddVertexWithID
//	AddEdge, AddEdgeGlobal
//	RemoveVertex, RemoveVertexGlobal
//	RemoveEdge, RemoveEdgeGlobal
//	CreateCluster, RemoveClusterAt, RemoveClusterChild, ClearClusters
//	MoveToSubcluster, MoveToParent
//	CopyInto
//	InitIndexMaps
//
// Errors are reported as sentinel values (see errors.go); the package never
// retries. The operations that return an error report their precondition
// violations through it; the accessors that take a LocalVertex/LocalEdge
// without returning an error (VertexProperty, Edge, GlobalEdgesOf, ...) do
// not validate the handle and panic on one outside the local graph.
package clustergraph
