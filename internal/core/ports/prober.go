package ports

// FileProber defines the interface for read-only filesystem existence checks
// performed during resolution.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type FileProber interface {
	// Exists reports whether a file or directory exists at the given path.
	Exists(path string) bool
}
