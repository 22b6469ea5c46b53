package storefakes

import (
	"sync"

	"github.com/legalsuite/go-legalsuite/session"
)

var _ session.Store = (*FakeStore)(nil)

type FakeStore struct {
	resident *session.Session
	lock     sync.RWMutex

	// Counters for asserting on store traffic in tests.
	SaveCalls  int
	ClearCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (fs *FakeStore) Save(s *session.Session) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	copied := *s
	fs.resident = &copied
	fs.SaveCalls++
	return nil
}

func (fs *FakeStore) Current() (*session.Session, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	if fs.resident == nil {
		return nil, nil
	}
	copied := *fs.resident
	return &copied, nil
}

func (fs *FakeStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.resident = nil
	fs.ClearCalls++
	return nil
}
