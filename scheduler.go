package plexus

// FrameID identifies a pending frame request. The zero value never refers to
// a live request.
type FrameID uint64

// Scheduler is the host's "call me on the next display frame" capability.
// Implementations must invoke callbacks on the same goroutine that delivers
// input to the Field, one at a time.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler whose callbacks run when the host calls Flush,
// typically once per display refresh. A callback that requests another frame
// during Flush is deferred to the next Flush, so a self-rescheduling loop
// advances exactly one step per flush.
//
// FrameQueue is not safe for concurrent use.
type FrameQueue struct {
	pending []frameRequest
	running []frameRequest
	nextID  FrameID
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame implements Scheduler. Unknown and already-run ids are ignored.
// It may be called from inside a running callback; a request cancelled that
// way before its turn in the current flush does not run.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Flush runs every callback requested before the call, in request order,
// and reports how many ran.
func (q *FrameQueue) Flush() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running, q.pending = q.pending, q.running[:0]
	n := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		n++
	}
	q.running = q.running[:0]
	return n
}

// Len returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}
