package clustergraph_test

import (
	"testing"

	cg "github.com/katalvlaran/clustergraph"
)

func TestIDAllocatorGenerateIsMonotone(t *testing.T) {
	a := cg.NewIDAllocator()

	first, err := a.Generate()
	MustNoError(t, err, "Generate #1")
	MustEqualGlobalVertex(t, cg.GlobalVertex(first), 11, "first generated id")

	second, err := a.Generate()
	MustNoError(t, err, "Generate #2")
	MustEqualGlobalVertex(t, cg.GlobalVertex(second), 12, "second generated id")
}

func TestIDAllocatorSetCountNeverMovesBackwards(t *testing.T) {
	a := cg.NewIDAllocator()
	a.SetCount(100)
	MustEqualInt(t, int(a.Count()), 100, "count after forward SetCount")

	a.SetCount(50)
	MustEqualInt(t, int(a.Count()), 100, "count after backward SetCount is a no-op")

	next, err := a.Generate()
	MustNoError(t, err, "Generate after SetCount")
	MustEqualGlobalVertex(t, cg.GlobalVertex(next), 101, "id continues past the adopted count")
}
