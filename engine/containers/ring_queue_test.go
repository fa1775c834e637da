package containers

import (
	"errors"
	"testing"
)

func TestRingQueue(t *testing.T) {
	rq := NewRingQueue[int](3)
	if !rq.IsEmpty() {
		t.Fatal("new queue not empty")
	}
	if _, err := rq.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("Dequeue on empty: %v", err)
	}
	if _, err := rq.Peek(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("Peek on empty: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if !rq.IsFull() || rq.Len() != 3 {
		t.Errorf("IsFull = %v, Len = %d", rq.IsFull(), rq.Len())
	}
	if err := rq.Enqueue(4); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Enqueue on full: %v", err)
	}

	if v, _ := rq.Peek(); v != 1 {
		t.Errorf("Peek = %d, want 1", v)
	}
	if v, _ := rq.Dequeue(); v != 1 {
		t.Errorf("Dequeue = %d, want 1", v)
	}
	// wrap around
	if err := rq.Enqueue(4); err != nil {
		t.Fatal(err)
	}
	var got []int
	rq.Each(func(v int) { got = append(got, v) })
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Each = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each = %v, want %v", got, want)
			break
		}
	}
}
