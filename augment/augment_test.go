package augment_test

import (
	"testing"

	"github.com/clonemasterUwU/bbst/augment"
)

func TestOrderStatisticRecompute(t *testing.T) {
	t.Parallel()

	var u augment.OrderStatistic[string, int]

	if got := u.Empty(); got != 0 {
		t.Fatalf("Empty() = %d, want 0", got)
	}

	if got := u.Recompute("k", 1, u.Empty(), u.Empty()); got != 1 {
		t.Fatalf("Recompute(leaf) = %d, want 1", got)
	}

	if got := u.Recompute("k", 1, 3, 4); got != 8 {
		t.Fatalf("Recompute(3,4) = %d, want 8", got)
	}
}

func TestSumRecompute(t *testing.T) {
	t.Parallel()

	var u augment.Sum[string, int]

	if got := u.Empty(); got != 0 {
		t.Fatalf("Empty() = %d, want 0", got)
	}

	if got := u.Recompute("k", 5, 3, 4); got != 12 {
		t.Fatalf("Recompute = %d, want 12", got)
	}
}

func TestNoOpRecompute(t *testing.T) {
	t.Parallel()

	var u augment.NoOp[string, int]

	if got := u.Recompute("k", 1, u.Empty(), u.Empty()); got != (struct{}{}) {
		t.Fatalf("Recompute = %v, want struct{}{}", got)
	}
}

func TestIntervalUpdaterRecompute(t *testing.T) {
	t.Parallel()

	u := augment.IntervalUpdater[int, [2]int]{
		Bounds: func(key int, value [2]int) (lo, hi int) {
			return value[0], value[1]
		},
		Less:    func(a, b int) bool { return a < b },
		EmptyLo: 1<<62 - 1,
		EmptyHi: -(1<<62 - 1),
	}

	leaf := u.Recompute(0, [2]int{10, 20}, u.Empty(), u.Empty())
	if leaf.Lo != 10 || leaf.Hi != 20 {
		t.Fatalf("leaf = %+v, want {10 20}", leaf)
	}

	left := u.Recompute(0, [2]int{5, 15}, u.Empty(), u.Empty())
	right := u.Recompute(0, [2]int{25, 30}, u.Empty(), u.Empty())

	parent := u.Recompute(0, [2]int{10, 20}, left, right)
	if parent.Lo != 5 || parent.Hi != 30 {
		t.Fatalf("parent = %+v, want {5 30}", parent)
	}

	// A subtree entirely inside the parent's own bound doesn't move it.
	narrow := u.Recompute(0, [2]int{10, 20}, u.Recompute(0, [2]int{12, 14}, u.Empty(), u.Empty()), u.Empty())
	if narrow.Lo != 10 || narrow.Hi != 20 {
		t.Fatalf("narrow = %+v, want {10 20}", narrow)
	}
}
