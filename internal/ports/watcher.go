package ports

// Watcher monitors a single file and reports when its contents may have changed.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the path after
	// a write, create, rename or remove of that file, debounced. The callback
	// may run on any goroutine. Returns an error if the parent directory
	// cannot be watched.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring. No onChange calls fire after Stop returns.
	// Safe to call multiple times.
	Stop() error
}
