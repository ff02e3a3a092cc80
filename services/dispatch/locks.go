package dispatch

import "sync"

// userLockStore holds a map of user identifiers to their locks, so events for
// one user are processed strictly one at a time while different users proceed
// in parallel.
type userLockStore struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func newUserLockStore() *userLockStore {
	return &userLockStore{locks: make(map[string]*sync.Mutex)}
}

// getLock returns the lock for a given user, creating one if it doesn't exist.
func (s *userLockStore) getLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
