package clustergraph_test

import (
	"testing"

	cg "github.com/katalvlaran/clustergraph"
)

func TestInitIndexMapsAssignsDenseIndices(t *testing.T) {
	root := cg.NewRoot(emptySchema())
	lu, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex u")
	lv, _, err := root.AddVertex()
	MustNoError(t, err, "AddVertex v")
	e, _, err := root.AddEdge(lu, lv)
	MustNoError(t, err, "AddEdge")

	root.InitIndexMaps()

	iu := cg.VertexProperty(root, lu, cg.IndexKey)
	iv := cg.VertexProperty(root, lv, cg.IndexKey)
	ie := cg.EdgeProperty(root, e, cg.IndexKey)

	MustEqualInt(t, iu, 0, "u index")
	MustEqualInt(t, iv, 1, "v index")
	MustEqualInt(t, ie, 0, "edge index")
}
