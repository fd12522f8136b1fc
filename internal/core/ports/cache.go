package ports

import "github.com/Milun/adapt-framework/internal/core/domain"

// BuildCache defines the interface for persisting the bundling engine's cache
// across invocations in a location-independent form.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type BuildCache interface {
	// Restore loads the cache from cachePath, rewriting the portability
	// placeholder to basePath. It returns nil, nil when caching is disabled,
	// when a blob is already held in process, or when no cache file exists.
	// A cache file that cannot be decompressed or parsed is a hard error.
	Restore(cachePath, basePath string) (*domain.CacheBlob, error)

	// Save retains blob in process for reuse within the same run, then
	// serializes it with every occurrence of basePath replaced by the
	// portability placeholder, compresses it, and writes it to cachePath,
	// overwriting any prior file.
	Save(cachePath, basePath string, blob *domain.CacheBlob) error
}
