package textqueue

import (
	"github.com/karta88821/textqueue/internal/list"
)

// DeleteMiddle unlinks and releases the element at position ⌊n/2⌋, 0-indexed
// from the front, located with a fast/slow pointer walk rather than by
// counting first. It returns false when the queue is nil or empty.
func (q *Queue) DeleteMiddle() bool {
	if q == nil || q.list.IsEmpty() {
		return false
	}

	s := q.list.Sentinel()
	slow := s.Next()
	for fast := s.Next(); fast != s && fast.Next() != s; fast = fast.Next().Next() {
		slow = slow.Next()
	}

	e := slow.Owner()
	value := e.value
	slow.Unlink()
	e.Release()
	q.log.Debug().Str("value", value).Msg("delete middle")
	return true
}

// DeleteDuplicates unlinks and releases every element whose value occurs in
// a run of two or more equal adjacent values, leaving no representative of
// any such run. The queue must already be sorted ascending; on unsorted
// input the result is undefined. It returns false only when the queue is
// nil; an empty queue is a trivial success.
func (q *Queue) DeleteDuplicates() bool {
	if q == nil {
		return false
	}

	s := q.list.Sentinel()
	cur := s.Next()
	for cur != s && cur.Next() != s {
		if cur.Owner().value != cur.Next().Owner().value {
			cur = cur.Next()
			continue
		}

		dup := cur.Owner().value
		for cur != s && cur.Owner().value == dup {
			next := cur.Next()
			e := cur.Owner()
			cur.Unlink()
			e.Release()
			cur = next
		}
		q.log.Debug().Str("value", dup).Msg("deleted duplicate run")
	}
	return true
}

// SwapPairs swaps each adjacent pair of elements in place by relinking; with
// an odd number of elements the last one stays put. No-op when the queue is
// nil, empty, or singular.
func (q *Queue) SwapPairs() {
	if q == nil || q.list.IsEmpty() || q.list.IsSingular() {
		return
	}

	s := q.list.Sentinel()
	cur := s.Next()
	for cur != s && cur.Next() != s {
		partner := cur.Next()
		cur.Unlink()
		partner.InsertAfter(cur)
		cur = cur.Next()
	}
}

// Reverse reverses the element order in place. Only links change: no element
// is allocated, released, or replaced. No-op when the queue is nil, empty,
// or singular.
func (q *Queue) Reverse() {
	if q == nil || q.list.IsEmpty() || q.list.IsSingular() {
		return
	}

	// Moving each visited node to the front inverts the order in one pass.
	q.list.ForEachSafe(func(n *list.Node[*Element]) bool {
		n.Unlink()
		q.list.PushFront(n)
		return true
	})
}
