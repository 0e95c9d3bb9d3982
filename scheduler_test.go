package plexus

import "testing"

func TestFrameQueueRunsInOrder(t *testing.T) {
	var q FrameQueue
	var got []int
	q.RequestFrame(func() { got = append(got, 1) })
	q.RequestFrame(func() { got = append(got, 2) })
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	if n := q.Flush(); n != 2 {
		t.Errorf("Flush() = %d, want 2", n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("order = %v, want [1 2]", got)
	}
	if q.Flush() != 0 {
		t.Error("second Flush should run nothing")
	}
}

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	var q FrameQueue
	runs := 0
	var loop func()
	loop = func() {
		runs++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	for i := 1; i <= 5; i++ {
		q.Flush()
		if runs != i {
			t.Fatalf("after flush %d runs = %d, want %d", i, runs, i)
		}
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestFrameQueueCancelPending(t *testing.T) {
	var q FrameQueue
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	q.Flush()
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestFrameQueueCancelDuringFlush(t *testing.T) {
	var q FrameQueue
	var second FrameID
	ranSecond := false
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ranSecond = true })

	if n := q.Flush(); n != 1 {
		t.Errorf("Flush() = %d, want 1", n)
	}
	if ranSecond {
		t.Error("callback cancelled mid-flush still ran")
	}
}

func TestFrameQueueCancelUnknown(t *testing.T) {
	var q FrameQueue
	q.CancelFrame(0)
	q.CancelFrame(42)
	id := q.RequestFrame(func() {})
	q.Flush()
	q.CancelFrame(id)
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestFrameQueueIDsAreUnique(t *testing.T) {
	var q FrameQueue
	seen := map[FrameID]bool{}
	for i := 0; i < 100; i++ {
		id := q.RequestFrame(func() {})
		if id == 0 || seen[id] {
			t.Fatalf("RequestFrame returned id %d twice or zero", id)
		}
		seen[id] = true
	}
}
