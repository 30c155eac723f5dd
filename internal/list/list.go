package list

// Node is a single link in a circular doubly linked list. A zero Node is
// unlinked; the sentinel of a List is the only node without an owner.
type Node[T any] struct {
	next  *Node[T]
	prev  *Node[T]
	owner T
}

// Owner returns the value this node is embedded in. The sentinel returns the
// zero value of T.
func (n *Node[T]) Owner() T {
	return n.owner
}

// SetOwner registers the enclosing value as this node's owner.
func (n *Node[T]) SetOwner(owner T) {
	n.owner = owner
}

// Next returns the successor link.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the predecessor link.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// SetNext overwrites the successor link without touching any other node.
func (n *Node[T]) SetNext(m *Node[T]) {
	n.next = m
}

// SetPrev overwrites the predecessor link without touching any other node.
func (n *Node[T]) SetPrev(m *Node[T]) {
	n.prev = m
}

// InsertAfter splices m into the cycle directly after n.
func (n *Node[T]) InsertAfter(m *Node[T]) {
	m.prev = n
	m.next = n.next
	n.next.prev = m
	n.next = m
}

// InsertBefore splices m into the cycle directly before n.
func (n *Node[T]) InsertBefore(m *Node[T]) {
	m.next = n
	m.prev = n.prev
	n.prev.next = m
	n.prev = m
}

// Unlink splices n out of its cycle and clears its own links so the node no
// longer pins its former neighbours.
func (n *Node[T]) Unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// List is the sentinel of a circular doubly linked list of nodes owned by T
// values. Use New to obtain a usable list; the zero List must be initialised
// with Init before use.
type List[T any] struct {
	root Node[T]
}

// New returns an initialised empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.Init()
	return l
}

// Init resets the list to the empty state, a self-linked sentinel. Any nodes
// previously in the list are abandoned.
func (l *List[T]) Init() {
	l.root.next = &l.root
	l.root.prev = &l.root
}

// Sentinel returns the list's anchor node. It never holds a value; iteration
// stops when it comes back around to the sentinel.
func (l *List[T]) Sentinel() *Node[T] {
	return &l.root
}

// IsEmpty reports whether the sentinel is its own neighbour.
func (l *List[T]) IsEmpty() bool {
	return l.root.next == &l.root
}

// IsSingular reports whether exactly one node is linked.
func (l *List[T]) IsSingular() bool {
	return !l.IsEmpty() && l.root.next == l.root.prev
}

// Len counts the linked nodes by full traversal.
func (l *List[T]) Len() int {
	n := 0
	for it := l.root.next; it != &l.root; it = it.next {
		n++
	}
	return n
}

// Front returns the first node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	if l.IsEmpty() {
		return nil
	}
	return l.root.next
}

// Back returns the last node, or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	if l.IsEmpty() {
		return nil
	}
	return l.root.prev
}

// PushFront links n directly after the sentinel.
func (l *List[T]) PushFront(n *Node[T]) {
	l.root.InsertAfter(n)
}

// PushBack links n directly before the sentinel.
func (l *List[T]) PushBack(n *Node[T]) {
	l.root.InsertBefore(n)
}

// ForEach visits each node front to back until fn returns false. The visited
// node must not be unlinked by fn; use ForEachSafe for that.
func (l *List[T]) ForEach(fn func(*Node[T]) bool) {
	for it := l.root.next; it != &l.root; it = it.next {
		if !fn(it) {
			return
		}
	}
}

// ForEachSafe visits each node front to back, capturing the successor before
// fn runs so that fn may unlink or relocate the visited node.
func (l *List[T]) ForEachSafe(fn func(*Node[T]) bool) {
	for it, next := l.root.next, l.root.next.next; it != &l.root; it, next = next, next.next {
		if !fn(it) {
			return
		}
	}
}
