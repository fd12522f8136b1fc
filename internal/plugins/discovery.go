// Package plugins implements plugin discovery over the configured source
// locations and the manifest module body injection.
package plugins

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/Milun/adapt-framework/internal/resolve"
)

// pluginManifest is the subset of a plugin's bower.json read during
// discovery.
type pluginManifest struct {
	Name string `json:"name"`
	Main string `json:"main"`
}

// Discover collects the plugin entry points declared under the configured
// source locations, in configured location order and lexical directory order
// within each location. Each plugin directory passing the name filter
// contributes the root-relative, extension-stripped module path of its
// manifest's main entry. Missing or unreadable manifests are skipped with a
// warning; discovery itself never fails.
func Discover(cfg *domain.BuildConfig, log ports.Logger) []domain.PluginEntry {
	var entries []domain.PluginEntry
	base := cfg.AbsBaseDir()

	for _, source := range cfg.PluginSources {
		sourceDir := filepath.Join(cfg.Root, filepath.FromSlash(source))

		dirs, err := os.ReadDir(sourceDir)
		if err != nil {
			log.Warn("plugin source location not readable: " + source)
			continue
		}

		for _, dir := range dirs {
			if !dir.IsDir() {
				continue
			}
			if !matchesFilter(cfg.PluginFilter, dir.Name(), log) {
				continue
			}

			main, ok := readMainEntry(filepath.Join(sourceDir, dir.Name()), log)
			if !ok {
				continue
			}

			abs := filepath.Join(sourceDir, dir.Name(), filepath.FromSlash(main))
			rel, err := filepath.Rel(filepath.FromSlash(base), abs)
			if err != nil {
				log.Warn("plugin entry outside source root: " + dir.Name())
				continue
			}

			entry := domain.StripSourceExtension(resolve.NormalizeSlashes(rel))
			entries = append(entries, domain.PluginEntry(entry))
		}
	}

	return entries
}

func matchesFilter(filter, name string, log ports.Logger) bool {
	if filter == "" {
		return true
	}
	matched, err := filepath.Match(filter, name)
	if err != nil {
		log.Warn("invalid plugin filter pattern: " + filter)
		return false
	}
	return matched
}

// readMainEntry reads a plugin directory's manifest and returns its declared
// main entry point.
func readMainEntry(pluginDir string, log ports.Logger) (string, bool) {
	data, err := os.ReadFile(filepath.Join(pluginDir, domain.PluginManifestName)) //nolint:gosec // path is derived from user configuration
	if err != nil {
		log.Warn("plugin manifest not readable: " + pluginDir)
		return "", false
	}

	var manifest pluginManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		log.Warn("plugin manifest not parseable: " + pluginDir)
		return "", false
	}
	if manifest.Main == "" {
		log.Warn("plugin manifest declares no main entry: " + pluginDir)
		return "", false
	}

	return manifest.Main, true
}
