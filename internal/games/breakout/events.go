package breakout

// Events is a per-tick buffer of one event type. Writers Send during a tick;
// readers see the buffer until the owner clears it at the next tick.
type Events[T any] struct {
	buf []T
}

// NewEvents creates an empty buffer.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{buf: make([]T, 0, 8)}
}

func (e *Events[T]) Send(ev T) {
	e.buf = append(e.buf, ev)
}

func (e *Events[T]) Len() int {
	return len(e.buf)
}

// Read returns the buffered events. The slice is only valid until the next Clear.
func (e *Events[T]) Read() []T {
	return e.buf
}

// Drain returns a copy of the buffered events and clears the buffer.
func (e *Events[T]) Drain() []T {
	out := make([]T, len(e.buf))
	copy(out, e.buf)
	e.Clear()
	return out
}

func (e *Events[T]) Clear() {
	clear(e.buf)
	e.buf = e.buf[:0]
}
