package domain

// BasePathToken is the placeholder substituted for the build's absolute base
// path inside a persisted cache, making the cache relocatable across
// checkouts and machines.
const BasePathToken = "%%BASEPATH%%"

// ModuleRecord is one cached module: its transpiled body, the dependency
// identifiers scanned from it, and the source file's mtime used for
// invalidation.
type ModuleRecord struct {
	Deps    []string `json:"deps"`
	Body    string   `json:"body"`
	MtimeNS int64    `json:"mtimeNs"`
}

// CacheBlob is the bundling engine's resolution and transform cache. Modules
// is keyed by absolute module path, which is why a serialized blob contains
// literal occurrences of the build's base path.
type CacheBlob struct {
	// Fingerprint identifies the build configuration the blob was produced
	// under. A restored blob with a stale fingerprint is discarded.
	Fingerprint string `json:"fingerprint"`

	Modules map[string]ModuleRecord `json:"modules"`
}

// NewCacheBlob returns an empty cache blob for the given configuration
// fingerprint.
func NewCacheBlob(fingerprint string) *CacheBlob {
	return &CacheBlob{
		Fingerprint: fingerprint,
		Modules:     make(map[string]ModuleRecord),
	}
}
