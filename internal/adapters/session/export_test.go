package session

// NewStoreWithEnv creates a store with a custom environment lookup.
func NewStoreWithEnv(path string, getenv func(string) string) *Store {
	return &Store{path: path, getenv: getenv}
}
