package queue

import (
	"cmp"
	"container/heap"
	"slices"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

type entry struct {
	order    *order.Order
	priority int
	seq      uint64
	index    int
}

func less(a, b *entry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// entries implements heap.Interface.
type entries []*entry

func (h entries) Len() int           { return len(h) }
func (h entries) Less(i, j int) bool { return less(h[i], h[j]) }

func (h entries) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entries) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entries) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// OrderQueue is a stable min-heap over (priority, insertion sequence).
// It is not safe for concurrent use.
type OrderQueue struct {
	heap    entries
	byID    map[int64]*entry
	nextSeq uint64
}

func New() *OrderQueue {
	return &OrderQueue{byID: make(map[int64]*entry)}
}

// Push enqueues o with the priority computed by Priority.
func (q *OrderQueue) Push(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order", err)
	}
	if _, exists := q.byID[o.ID()]; exists {
		return errs.NewObjectAlreadyExistsError("queued order", o.ID())
	}

	e := &entry{order: o, priority: Priority(o), seq: q.nextSeq}
	q.nextSeq++
	heap.Push(&q.heap, e)
	q.byID[o.ID()] = e
	return nil
}

// Peek returns the next order to be served without removing it.
func (q *OrderQueue) Peek() (*order.Order, bool) {
	if len(q.heap) == 0 {
		return nil, false
	}
	return q.heap[0].order, true
}

// Pop removes and returns the next order to be served.
func (q *OrderQueue) Pop() (*order.Order, bool) {
	if len(q.heap) == 0 {
		return nil, false
	}
	e := heap.Pop(&q.heap).(*entry)
	delete(q.byID, e.order.ID())
	return e.order, true
}

// Remove takes the order with id out of the queue wherever it is.
func (q *OrderQueue) Remove(id int64) (*order.Order, bool) {
	e, ok := q.byID[id]
	if !ok {
		return nil, false
	}
	heap.Remove(&q.heap, e.index)
	delete(q.byID, id)
	return e.order, true
}

func (q *OrderQueue) Contains(id int64) bool {
	_, ok := q.byID[id]
	return ok
}

func (q *OrderQueue) Len() int {
	return len(q.heap)
}

// Orders lists the queued orders in the order they would be popped.
func (q *OrderQueue) Orders() []*order.Order {
	sorted := slices.Clone(q.heap)
	slices.SortFunc(sorted, func(a, b *entry) int {
		return cmp.Or(cmp.Compare(a.priority, b.priority), cmp.Compare(a.seq, b.seq))
	})

	out := make([]*order.Order, len(sorted))
	for i, e := range sorted {
		out[i] = e.order
	}
	return out
}
