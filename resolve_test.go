package clustergraph_test

import (
	"testing"

	cg "github.com/katalvlaran/clustergraph"
)

func TestContainingVertexDescendsThroughNesting(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	la, a, err := root.AddVertex()
	MustNoError(t, err, "AddVertex a")

	child, ld, err := root.CreateCluster()
	MustNoError(t, err, "CreateCluster")
	if _, err := root.MoveToSubcluster(la, child); err != nil {
		t.Fatalf("MoveToSubcluster: %v", err)
	}

	lv, ok := root.ContainingVertex(a)
	MustTrue(t, ok, "ContainingVertex(a) at root")
	if lv != ld {
		t.Fatalf("ContainingVertex(a) = %d, want the cluster vertex %d", lv, ld)
	}

	lvDeep, host, ok := root.ContainingVertexGraph(a)
	MustTrue(t, ok, "ContainingVertexGraph(a)")
	MustTrue(t, host == child, "ContainingVertexGraph(a) host")
	MustEqualGlobalVertex(t, host.GlobalOf(lvDeep), a, "ContainingVertexGraph(a) resolved vertex")
}

func TestGetLocalVertexMatchesContainingVertex(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lv, g, err := root.AddVertex()
	MustNoError(t, err, "AddVertex")

	got, ok := root.GetLocalVertex(g)
	MustTrue(t, ok, "GetLocalVertex")
	if got != lv {
		t.Fatalf("GetLocalVertex(g) = %d, want %d", got, lv)
	}

	gotDeep, host, ok := root.GetLocalVertexGraph(g)
	MustTrue(t, ok, "GetLocalVertexGraph")
	MustTrue(t, host == root, "GetLocalVertexGraph host")
	if gotDeep != lv {
		t.Fatalf("GetLocalVertexGraph(g) = %d, want %d", gotDeep, lv)
	}
}

func TestContainingVertexUnknownFails(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	if _, ok := root.ContainingVertex(999999); ok {
		t.Fatalf("ContainingVertex found a global id that was never assigned")
	}
}
