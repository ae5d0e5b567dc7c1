package guide

// Store exposes guide retrieval for HTTP handlers.
type Store interface {
	List() []Guide
	FindByID(id string) (Guide, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Guide
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied guides.
func NewMemoryStore(items []Guide) *MemoryStore {
	return &MemoryStore{items: append([]Guide(nil), items...)}
}

// List returns every bundled guide.
func (s *MemoryStore) List() []Guide {
	return append([]Guide(nil), s.items...)
}

// FindByID looks up a guide by identifier.
func (s *MemoryStore) FindByID(id string) (Guide, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Guide{}, false
}
