package domain

// BuildConfig is the validated build configuration for one bundling run. All
// tables are read once from configuration and are immutable for the duration
// of a build.
type BuildConfig struct {
	// Root is the absolute working directory of the build.
	Root string

	// Entry is the entry module identifier.
	Entry string

	// BaseDir is the source root, relative to Root.
	BaseDir string

	Remap    RemapTable
	External ExternalTable

	// PluginSources are the locations scanned for plugins, relative to Root,
	// in discovery order.
	PluginSources []string

	// PluginFilter is a glob matched against plugin directory names. An empty
	// filter matches everything.
	PluginFilter string

	// ManifestSuffix selects the single module whose body is replaced with the
	// generated plugin dependency list, e.g. "/plugins.js".
	ManifestSuffix string

	// CachePath is the cache file location, relative to Root.
	CachePath string

	// OutputPath is the bundle file location, relative to Root.
	OutputPath string

	// SourceMaps requests a source map next to the bundle. When false, a stale
	// map from a previous run is deleted.
	SourceMaps bool

	// SkipCache disables cache restore and save for this run.
	SkipCache bool

	// Check enables the type-check pass.
	Check bool
}

// AbsBaseDir returns the absolute source root.
func (c *BuildConfig) AbsBaseDir() string {
	return joinUnderRoot(c.Root, c.BaseDir)
}

// AbsCachePath returns the absolute cache file location.
func (c *BuildConfig) AbsCachePath() string {
	return joinUnderRoot(c.Root, c.CachePath)
}

// AbsOutputPath returns the absolute bundle file location.
func (c *BuildConfig) AbsOutputPath() string {
	return joinUnderRoot(c.Root, c.OutputPath)
}
