package clustergraph_test

import (
	"testing"

	cg "github.com/katalvlaran/clustergraph"
)

var lengthKey = cg.NewObjectKey[string]("length")

func TestAddEdgeRejectsSameVertex(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex")

	_, _, err = root.AddEdge(lv, lv)
	MustErrorIs(t, err, cg.ErrSameVertex, "AddEdge(lv,lv)")
}

func TestAddEdgeRejectsClusterVertex(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex")
	_, ld, err := root.CreateCluster()
	MustNoError(t, err, "CreateCluster")

	_, _, err = root.AddEdge(lv, ld)
	MustErrorIs(t, err, cg.ErrIsCluster, "AddEdge(lv,clusterVertex)")
}

func TestAddEdgeAppendsToExistingLocalEdge(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lu, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex u")
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex v")

	e1, _, err := root.AddEdge(lu, lv)
	MustNoError(t, err, "AddEdge #1")
	e2, _, err := root.AddEdge(lu, lv)
	MustNoError(t, err, "AddEdge #2")

	if e1 != e2 {
		t.Fatalf("AddEdge twice between the same pair produced two local edges")
	}
	MustEqualInt(t, root.GlobalEdgeCount(e1), 2, "aggregated global edge count")
}

func TestEdgeObjectPerGlobalEdge(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lu, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex u")
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex v")

	e, ge1, err := root.AddEdge(lu, lv)
	MustNoError(t, err, "AddEdge #1")
	_, ge2, err := root.AddEdge(lu, lv)
	MustNoError(t, err, "AddEdge #2")

	ok := cg.SetGlobalEdgeObject(root, e, ge1.ID, lengthKey, "short")
	MustTrue(t, ok, "SetGlobalEdgeObject ge1")
	ok = cg.SetGlobalEdgeObject(root, e, ge2.ID, lengthKey, "long")
	MustTrue(t, ok, "SetGlobalEdgeObject ge2")

	got1, ok := cg.GlobalEdgeObject(root, e, ge1.ID, lengthKey)
	MustTrue(t, ok, "GlobalEdgeObject ge1 found")
	if got1 != "short" {
		t.Fatalf("GlobalEdgeObject ge1 = %q, want %q", got1, "short")
	}

	got2, ok := cg.GlobalEdgeObject(root, e, ge2.ID, lengthKey)
	MustTrue(t, ok, "GlobalEdgeObject ge2 found")
	if got2 != "long" {
		t.Fatalf("GlobalEdgeObject ge2 = %q, want %q", got2, "long")
	}
}

func TestRemoveEdgeGlobalFreesSlotWhenLastEntryDropped(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lu, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex u")
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex v")

	_, ge, err := root.AddEdge(lu, lv)
	MustNoError(t, err, "AddEdge")

	MustNoError(t, root.RemoveEdgeGlobal(ge), "RemoveEdgeGlobal")

	if _, ok := root.Edge(lu, lv); ok {
		t.Fatalf("Edge(u,v) still present after its only global edge was removed")
	}
	MustErrorIs(t, root.RemoveEdgeGlobal(ge), cg.ErrEdgeNotFound, "RemoveEdgeGlobal twice")
}
