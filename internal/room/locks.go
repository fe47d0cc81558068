package room

import "sync"

// roomLocks hands out one mutex per room id so that every mutating
// operation on the same room is serialized and its check-then-act guards
// hold atomically against concurrent requests.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for roomID and returns its unlock func.
func (l *roomLocks) lock(roomID string) func() {
	l.mu.Lock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// forget drops the mutex for a room that no longer exists. A caller
// already blocked in lock keeps the old mutex, while the next caller
// mints a fresh one, so the two are not serialized against each other.
// That is only safe after the room row is gone: both fall out on
// not-found, so callers must delete the room before forgetting its lock.
func (l *roomLocks) forget(roomID string) {
	l.mu.Lock()
	delete(l.locks, roomID)
	l.mu.Unlock()
}
