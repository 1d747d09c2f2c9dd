package prefs

// MemStore is an in-memory Store for tests and for runs that should not
// touch the filesystem.
type MemStore struct {
	Values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Values: make(map[string]string)}
}

// Get implements Store.
func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// Set implements Store.
func (s *MemStore) Set(key, value string) error {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
	return nil
}
