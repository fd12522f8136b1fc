package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ConfigFileName is the name of the build configuration file.
	ConfigFileName = "adapt-build.yaml"

	// BuildDirName is the name of the internal build metadata directory.
	BuildDirName = ".adaptbuild"

	// CacheFileName is the name of the portable cache file.
	CacheFileName = "bundle.cache"

	// PluginManifestName is the per-plugin manifest file read during
	// discovery for the plugin's main entry point.
	PluginManifestName = "bower.json"

	// PrimaryExtension and SecondaryExtension are the recognized source
	// extensions, in probe priority order.
	PrimaryExtension   = ".js"
	SecondaryExtension = ".ts"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ExtensionProbeOrder is the fixed order in which missing extensions are
// probed against the filesystem.
var ExtensionProbeOrder = []string{PrimaryExtension, SecondaryExtension}

// SourceExtensions are the extensions recognized as already-complete module
// paths.
var SourceExtensions = []string{PrimaryExtension, SecondaryExtension}

// DefaultCachePath returns the default cache file location, relative to the
// build root. It joins .adaptbuild and bundle.cache.
func DefaultCachePath() string {
	return filepath.Join(BuildDirName, CacheFileName)
}

// HasSourceExtension reports whether the path already ends in a recognized
// source extension.
func HasSourceExtension(path string) bool {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// StripSourceExtension removes a trailing recognized source extension, if any.
func StripSourceExtension(path string) string {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path
}

// joinUnderRoot joins a root-relative path under root and normalizes
// separators to forward slashes. An already-absolute path is kept as is.
func joinUnderRoot(root, rel string) string {
	if rel == "" {
		return strings.ReplaceAll(root, "\\", "/")
	}
	if filepath.IsAbs(rel) {
		return strings.ReplaceAll(rel, "\\", "/")
	}
	return strings.ReplaceAll(filepath.Join(root, rel), "\\", "/")
}
