package textqueue

import (
	"sort"
	"testing"

	"github.com/karta88821/textqueue/internal/list"
	"github.com/karta88821/textqueue/internal/telemetry"
)

func TestSortOrdersAscending(t *testing.T) {
	q := New()
	q.InsertTail("banana")
	q.InsertTail("apple")
	q.InsertTail("cherry")

	q.Sort()
	expectValues(t, q, "apple", "banana", "cherry")
}

func TestSortLargerInput(t *testing.T) {
	values := []string{
		"pear", "kiwi", "fig", "plum", "apple", "mango", "date", "lime",
		"grape", "melon", "cherry", "peach", "banana", "apricot", "quince",
		"fig", "lime", "apple", "date", "plum",
	}
	q := New(WithValues(values...))

	q.Sort()

	want := append([]string(nil), values...)
	sort.Strings(want)
	expectValues(t, q, want...)
}

func TestSortIsIdempotent(t *testing.T) {
	q := New(WithValues("c", "a", "b", "a"))

	q.Sort()
	once := q.Values()
	q.Sort()
	expectValues(t, q, once...)
}

func TestSortIsStable(t *testing.T) {
	q := New(WithValues("b", "a", "b", "a", "b"))

	var aFirst, aSecond, bFirst, bSecond, bThird *Element
	i := 0
	q.list.ForEach(func(n *list.Node[*Element]) bool {
		switch i {
		case 0:
			bFirst = n.Owner()
		case 1:
			aFirst = n.Owner()
		case 2:
			bSecond = n.Owner()
		case 3:
			aSecond = n.Owner()
		case 4:
			bThird = n.Owner()
		}
		i++
		return true
	})

	q.Sort()
	expectValues(t, q, "a", "a", "b", "b", "b")

	want := []*Element{aFirst, aSecond, bFirst, bSecond, bThird}
	i = 0
	q.list.ForEach(func(n *list.Node[*Element]) bool {
		if n.Owner() != want[i] {
			t.Fatalf("equal elements reordered at position %d", i)
		}
		i++
		return true
	})
}

func TestSortThenDeleteDuplicates(t *testing.T) {
	q := New(WithValues("cherry", "apple", "banana", "apple", "cherry", "date"))

	q.Sort()
	q.DeleteDuplicates()
	expectValues(t, q, "banana", "date")
}

func TestSortSmallQueues(t *testing.T) {
	var nilQ *Queue
	nilQ.Sort()

	q := New()
	q.Sort()
	if got := q.Size(); got != 0 {
		t.Fatalf("empty queue should stay empty, got size %d", got)
	}

	q.InsertTail("only")
	q.Sort()
	expectValues(t, q, "only")
}

func TestSortRestoresListInvariants(t *testing.T) {
	q := New(WithValues("d", "b", "e", "a", "c"))
	q.Sort()

	// prev must be the exact inverse of next around the whole cycle.
	s := q.list.Sentinel()
	for n := s; ; {
		next := n.Next()
		if next.Prev() != n {
			t.Fatalf("broken prev link after sort at value %q", next.Owner().Value())
		}
		n = next
		if n == s {
			break
		}
	}

	// The relinked queue must keep working for ended access.
	head := q.RemoveHead(nil)
	tail := q.RemoveTail(nil)
	if head.Value() != "a" || tail.Value() != "e" {
		t.Fatalf("unexpected ends after sort: head %q tail %q", head.Value(), tail.Value())
	}
	head.Release()
	tail.Release()
}

func TestSortAllocatesNoElements(t *testing.T) {
	m := &telemetry.AllocMetrics{}
	q := New(WithMetrics(m), WithValues("c", "b", "a"))

	allocsBefore, _ := m.Snapshot()
	q.Sort()
	allocsAfter, releases := m.Snapshot()
	if allocsAfter != allocsBefore || releases != 0 {
		t.Fatalf("sort must not allocate or release elements, got allocs %d→%d releases %d",
			allocsBefore, allocsAfter, releases)
	}
}
