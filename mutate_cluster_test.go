package clustergraph_test

import (
	"testing"

	cg "github.com/katalvlaran/clustergraph"
)

func TestRemoveClusterAtRejectsPlainVertex(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex")

	MustErrorIs(t, root.RemoveClusterAt(lv, cg.RemovalCallbacks{}), cg.ErrNotCluster, "RemoveClusterAt on a plain vertex")
}

func TestRemoveClusterChildRejectsForeignCluster(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	other := cg.NewRoot(emptySchema())
	foreign, _, err := other.CreateCluster()
	MustNoError(t, err, "CreateCluster on unrelated tree")

	MustErrorIs(t, root.RemoveClusterChild(foreign, cg.RemovalCallbacks{}), cg.ErrNotDirectChild, "RemoveClusterChild(foreign)")
}

func TestClearClustersRemovesEveryDirectChild(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	if _, _, err := root.CreateCluster(); err != nil {
		t.Fatalf("CreateCluster #1: %v", err)
	}
	if _, _, err := root.CreateCluster(); err != nil {
		t.Fatalf("CreateCluster #2: %v", err)
	}
	MustEqualInt(t, root.NumClusters(), 2, "clusters before ClearClusters")

	var removed []*cg.Cluster
	err := root.ClearClusters(cg.RemovalCallbacks{OnCluster: func(c *cg.Cluster) { removed = append(removed, c) }})
	MustNoError(t, err, "ClearClusters")

	MustEqualInt(t, len(removed), 2, "ClearClusters functor calls")
	MustEqualInt(t, root.NumClusters(), 0, "clusters after ClearClusters")
}

func TestCreateClusterIsAddressableBothWays(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	child, v, err := root.CreateCluster()
	MustNoError(t, err, "CreateCluster")

	got, ok := root.ClusterAt(v)
	MustTrue(t, ok, "ClusterAt(v)")
	MustTrue(t, got == child, "ClusterAt(v) identity")

	gotV, ok := root.VertexOfCluster(child)
	MustTrue(t, ok, "VertexOfCluster(child)")
	MustNotEqualLocalVertex(t, gotV, -1, "VertexOfCluster(child) returned an invalid handle")
}
