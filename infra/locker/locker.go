package locker

import "sync"

// Locker serializes rent-check processing per landlord inside one process, so
// a diagnostic run triggered over HTTP cannot interleave with the scheduled
// run for the same landlord.
type Locker struct {
	mu           sync.Mutex
	inProcessMap map[int64]bool
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[int64]bool),
	}
}

// TryAcquire marks a landlord as being processed. It returns false when the
// landlord is already held by another run.
func (l *Locker) TryAcquire(landlordID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inProcessMap[landlordID] {
		return false
	}
	l.inProcessMap[landlordID] = true
	return true
}

func (l *Locker) Release(landlordID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, landlordID)
}
