// Package memstore is an in-process key-value slot. Nothing survives the
// process; it backs tests and the "memory" storage backend.
package memstore

import "sync"

type Store struct {
	mu   sync.Mutex
	data map[string][]byte

	// GetErr and SetErr, when set, are returned by the next calls to Get/Set.
	GetErr error
	SetErr error

	Sets int // number of successful Set calls
}

func New() *Store {
	return &Store{data: map[string][]byte{}}
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	b, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.data[key] = append([]byte(nil), value...)
	s.Sets++
	return nil
}
