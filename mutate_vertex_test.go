package clustergraph_test

import (
	"testing"

	cg "github.com/katalvlaran/clustergraph"
)

var weightKey = cg.NewPropertyKey[float64]("weight")

func TestVertexPropertyDefaultsThenRoundTrips(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex")

	got := cg.VertexProperty(root, lv, weightKey)
	if got != 0 {
		t.Fatalf("VertexProperty before SetVertexProperty = %v, want zero value", got)
	}

	cg.SetVertexProperty(root, lv, weightKey, 2.5)
	got = cg.VertexProperty(root, lv, weightKey)
	if got != 2.5 {
		t.Fatalf("VertexProperty after SetVertexProperty = %v, want 2.5", got)
	}
}

func TestRemoveVertexNotFound(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex")

	MustNoError(t, root.RemoveVertex(lv, nil), "RemoveVertex first call")
	MustErrorIs(t, root.RemoveVertex(lv, nil), cg.ErrVertexNotFound, "RemoveVertex second call")
}

func TestAddVertexWithIDRejectsSentinel(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	_, err := root.AddVertexWithID(0)
	MustErrorIs(t, err, cg.ErrInvalidID, "AddVertexWithID(0)")
}

func TestFreedVertexSlotIsReused(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lv1, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex lv1")
	MustNoError(t, root.RemoveVertex(lv1, nil), "RemoveVertex lv1")

	lv2, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex lv2")

	if lv2 != lv1 {
		t.Fatalf("AddVertex after RemoveVertex got slot %d, want reused slot %d", lv2, lv1)
	}
}

func TestRemoveVertexGlobalCleansAncestorAggregation(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	la, a, err := root.AddVertex()
	MustNoError(t, err, "AddVertex a")
	_, b, err := root.AddVertex()
	MustNoError(t, err, "AddVertex b")

	child, _, err := root.CreateCluster()
	MustNoError(t, err, "CreateCluster")
	if _, err := root.MoveToSubcluster(la, child); err != nil {
		t.Fatalf("MoveToSubcluster: %v", err)
	}

	_, ge, _, err := root.AddEdgeGlobal(a, b)
	MustNoError(t, err, "AddEdgeGlobal(a,b)")

	var fired []cg.GlobalEdge
	err = root.RemoveVertexGlobal(a, func(x cg.GlobalEdge) { fired = append(fired, x) })
	MustNoError(t, err, "RemoveVertexGlobal(a)")

	MustEqualInt(t, len(fired), 1, "functor call count")
	MustEqualGlobalVertex(t, fired[0].ID, ge.ID, "functor saw the aggregated edge")

	if _, ok := root.ContainingEdge(ge); ok {
		t.Fatalf("edge still aggregated at root after RemoveVertexGlobal(a)")
	}
}
