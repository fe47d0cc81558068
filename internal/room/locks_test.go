package room

import (
	"sync"
	"testing"
)

func TestRoomLocksSerialize(t *testing.T) {
	l := newRoomLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock("room-1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestRoomLocksForget(t *testing.T) {
	l := newRoomLocks()

	unlock := l.lock("room-1")
	unlock()
	l.forget("room-1")

	// A forgotten id is re-registered with a fresh mutex on the next lock.
	unlock = l.lock("room-1")
	unlock()

	l.mu.Lock()
	_, ok := l.locks["room-1"]
	l.mu.Unlock()
	if !ok {
		t.Error("lock after forget did not re-register the room")
	}
}
