package ports

// Watcher defines the interface for watching the source tree for changes in
// watch mode.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Add starts watching the given directory tree.
	Add(root string) error

	// Events delivers the paths of changed files.
	Events() <-chan string

	// Errors delivers watcher failures.
	Errors() <-chan error

	// Close releases the watcher.
	Close() error
}
