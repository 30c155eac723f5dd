package textqueue

import (
	"github.com/karta88821/textqueue/internal/list"
)

// Sort orders the elements ascending by value using an in-place merge sort.
// The sort is stable: elements with equal values keep their relative order.
// No-op when the queue is nil, empty, or singular.
//
// The cycle is first broken into an acyclic chain threaded through the next
// links, sorted recursively with slow/fast midpoint splitting, and then
// reassembled into a circular doubly linked list on the sentinel. Recursion
// depth is O(log n) and no additional elements are allocated.
func (q *Queue) Sort() {
	if q == nil || q.list.IsEmpty() || q.list.IsSingular() {
		return
	}

	s := q.list.Sentinel()
	s.Prev().SetNext(nil)
	head := mergeSort(s.Next())

	// Rebuild the prev links and close the cycle around the sentinel.
	s.SetNext(head)
	prev := s
	for n := head; n != nil; n = n.Next() {
		n.SetPrev(prev)
		prev = n
	}
	prev.SetNext(s)
	s.SetPrev(prev)

	q.log.Debug().Msg("sorted")
}

// mergeSort sorts a nil-terminated chain threaded through next links. Prev
// links are left stale; the caller rebuilds them.
func mergeSort(head *list.Node[*Element]) *list.Node[*Element] {
	if head == nil || head.Next() == nil {
		return head
	}

	slow := head
	for fast := head.Next(); fast != nil && fast.Next() != nil; fast = fast.Next().Next() {
		slow = slow.Next()
	}
	rest := slow.Next()
	slow.SetNext(nil)

	return merge(mergeSort(head), mergeSort(rest))
}

// merge combines two sorted chains. Ties take the left chain's element so
// that the overall sort stays stable.
func merge(left, right *list.Node[*Element]) *list.Node[*Element] {
	var head list.Node[*Element]
	tail := &head
	for left != nil && right != nil {
		if left.Owner().value <= right.Owner().value {
			tail.SetNext(left)
			left = left.Next()
		} else {
			tail.SetNext(right)
			right = right.Next()
		}
		tail = tail.Next()
	}
	if left != nil {
		tail.SetNext(left)
	} else {
		tail.SetNext(right)
	}
	return head.Next()
}
