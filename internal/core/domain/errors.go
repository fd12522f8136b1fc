package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheDecode is returned when a cache file cannot be decompressed or
	// parsed. A corrupt cache cannot be safely used, so this is fatal for the
	// current build's caching.
	ErrCacheDecode = zerr.New("failed to decode cache")

	// ErrCacheEncode is returned when the cache cannot be serialized or
	// compressed. A save failure aborts persisting.
	ErrCacheEncode = zerr.New("failed to encode cache")

	// ErrConfigRead is returned when the build configuration file cannot be
	// read.
	ErrConfigRead = zerr.New("failed to read build configuration")

	// ErrConfigParse is returned when the build configuration file cannot be
	// parsed.
	ErrConfigParse = zerr.New("failed to parse build configuration")

	// ErrInvalidConfig is returned when the build configuration is missing a
	// required field or contains a duplicate prefix rule.
	ErrInvalidConfig = zerr.New("invalid build configuration")

	// ErrModuleLoad is returned when a resolved module's body cannot be read.
	ErrModuleLoad = zerr.New("failed to load module")

	// ErrBundleWrite is returned when the bundle or its source map cannot be
	// written.
	ErrBundleWrite = zerr.New("failed to write bundle")

	// ErrCheckFailed is returned when the type-check pass rejects a module.
	ErrCheckFailed = zerr.New("type check failed")

	// ErrBuildFailed wraps any bundling failure reported to the operator
	// through the CLI exit path.
	ErrBuildFailed = zerr.New("build failed")
)
