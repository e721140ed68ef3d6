package dosetable

import "sync/atomic"

// Holder publishes a Table to concurrent readers and allows it to be swapped
// atomically, so an in-flight recommendation never observes a partially
// populated table during a reload.
type Holder struct {
	p atomic.Pointer[Table]
}

func NewHolder(t *Table) *Holder {
	h := &Holder{}
	h.p.Store(t)
	return h
}

func (h *Holder) Get() *Table {
	return h.p.Load()
}

func (h *Holder) Store(t *Table) {
	h.p.Store(t)
}
