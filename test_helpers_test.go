// Package clustergraph_test holds shared fixtures and assertion helpers for
// the clustergraph test suite. The helpers here are stdlib-only;
// clone_test.go and move_test.go use testify/require instead.
package clustergraph_test

import (
	"errors"
	"testing"

	cg "github.com/katalvlaran/clustergraph"
)

// Schema fixture used across most tests: declares no extra kinds, so
// NewRoot injects only the mandatory index/changed kinds.
func emptySchema() cg.Schema { return cg.Schema{} }

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if errors.Is(err, target) {
		return
	}
	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue fails the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if cond {
		return
	}
	t.Fatalf("%s: predicate is false", op)
}

// MustFalse fails the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		return
	}
	t.Fatalf("%s: predicate is true", op)
}

// MustEqualInt fails if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got == want {
		return
	}
	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustEqualGlobalVertex fails if got != want.
func MustEqualGlobalVertex(t *testing.T, got, want cg.GlobalVertex, op string) {
	t.Helper()
	if got == want {
		return
	}
	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustNotEqualLocalVertex fails if got == notWant.
func MustNotEqualLocalVertex(t *testing.T, got, notWant cg.LocalVertex, op string) {
	t.Helper()
	if got != notWant {
		return
	}
	t.Fatalf("%s: got=%d must_not_equal=%d", op, got, notWant)
}
