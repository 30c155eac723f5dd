package textqueue

import (
	"github.com/rs/zerolog"

	"github.com/karta88821/textqueue/internal/list"
	"github.com/karta88821/textqueue/internal/telemetry"
)

// Queue is a deque of string elements anchored at the sentinel of a circular
// doubly linked list. The zero value is not usable; obtain queues through
// New. All methods tolerate a nil receiver and report it through their
// documented failure value.
type Queue struct {
	list    *list.List[*Element]
	log     zerolog.Logger
	metrics *telemetry.AllocMetrics
}

// New creates an empty queue, optionally seeded and configured through opts.
func New(opts ...Option) *Queue {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	q := &Queue{
		list:    list.New[*Element](),
		log:     options.log,
		metrics: options.metrics,
	}
	for _, v := range options.initial {
		q.InsertTail(v)
	}
	return q
}

// Destroy releases every element still linked in the queue and resets it to
// the empty state. Safe on a nil or empty queue. Elements previously handed
// out by RemoveHead or RemoveTail are untouched; their owners release them.
func (q *Queue) Destroy() {
	if q == nil {
		return
	}
	released := 0
	q.list.ForEachSafe(func(n *list.Node[*Element]) bool {
		n.Unlink()
		n.Owner().Release()
		released++
		return true
	})
	q.list.Init()
	q.log.Debug().Int("released", released).Msg("destroyed")
}

// InsertHead allocates an element holding value and links it as the new
// front. It returns false only when the queue is nil.
func (q *Queue) InsertHead(value string) bool {
	if q == nil {
		return false
	}
	e := newElement(value, q.metrics)
	q.list.PushFront(&e.node)
	q.log.Debug().Str("value", value).Msg("insert head")
	return true
}

// InsertTail allocates an element holding value and links it as the new
// back. It returns false only when the queue is nil.
func (q *Queue) InsertTail(value string) bool {
	if q == nil {
		return false
	}
	e := newElement(value, q.metrics)
	q.list.PushBack(&e.node)
	q.log.Debug().Str("value", value).Msg("insert tail")
	return true
}

// RemoveHead unlinks and returns the front element, or nil when the queue is
// nil or empty. If buf is non-empty, up to len(buf)-1 bytes of the value are
// copied into it followed by a terminating zero byte. The element is not
// released; the caller owns it and must eventually call Release.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil || q.list.IsEmpty() {
		return nil
	}
	n := q.list.Front()
	e := n.Owner()
	e.copyValue(buf)
	n.Unlink()
	q.log.Debug().Str("value", e.value).Msg("remove head")
	return e
}

// RemoveTail unlinks and returns the back element; otherwise identical to
// RemoveHead.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil || q.list.IsEmpty() {
		return nil
	}
	n := q.list.Back()
	e := n.Owner()
	e.copyValue(buf)
	n.Unlink()
	q.log.Debug().Str("value", e.value).Msg("remove tail")
	return e
}

// Size counts the elements by full traversal. A nil or empty queue has size
// zero.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.list.Len()
}

// Values returns a snapshot of the values front to back, or nil when the
// queue is nil or empty.
func (q *Queue) Values() []string {
	if q == nil || q.list.IsEmpty() {
		return nil
	}
	values := make([]string, 0, 8)
	q.list.ForEach(func(n *list.Node[*Element]) bool {
		values = append(values, n.Owner().value)
		return true
	})
	return values
}
