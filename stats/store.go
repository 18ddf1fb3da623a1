package stats

import "fmt"

// Store persists the score log. Implementations must be safe for concurrent
// use; the menu shell and a finishing session can touch the store together.
type Store interface {
	Add(r Record) error
	All() ([]Record, error)
	Clear() error
	Close() error
}

// Open selects a backend by name: "json" (the default) or "sqlite".
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "json":
		return NewJSONStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	}
	return nil, fmt.Errorf("unknown stats backend %q", backend)
}
