package textqueue

import (
	"github.com/karta88821/textqueue/internal/list"
	"github.com/karta88821/textqueue/internal/telemetry"
)

// Element is a single queue entry. It owns its string value and embeds the
// list node that links it into a queue.
type Element struct {
	value    string
	released bool
	metrics  *telemetry.AllocMetrics
	node     list.Node[*Element]
}

// NewElement allocates an unlinked element holding value. The allocation is
// recorded against the default metrics instance; elements created through a
// queue's insert operations are recorded against that queue's instance
// instead.
func NewElement(value string) *Element {
	return newElement(value, telemetry.Default())
}

func newElement(value string, metrics *telemetry.AllocMetrics) *Element {
	e := &Element{value: value, metrics: metrics}
	e.node.SetOwner(e)
	metrics.ElementAllocated()
	return e
}

// Value returns the element's string value. Released elements report the
// empty string.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// Release retires the element: the release is recorded and the value is
// cleared. The caller must guarantee the element is no longer linked into any
// queue; releasing a linked element corrupts that queue. Releasing nil or an
// already-released element is a no-op.
func (e *Element) Release() {
	if e == nil || e.released {
		return
	}
	e.released = true
	e.value = ""
	e.metrics.ElementReleased()
}

// copyValue copies the element's value into buf, truncating to len(buf)-1
// bytes and terminating with a zero byte. A nil or empty buf is ignored.
func (e *Element) copyValue(buf []byte) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], e.value)
	buf[n] = 0
}
