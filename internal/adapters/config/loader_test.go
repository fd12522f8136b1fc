package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Milun/adapt-framework/internal/adapters/config"
	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestFileConfigLoader_Load(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `
entry: core/js/app
base: src/course
remap:
  - prefix: coreJS/
    replace: core/js/
  - prefix: coreViews/
    replace: core/js/views/
external:
  - prefix: libraries/
    marker: "empty:"
plugins:
  sources:
    - src/components
    - src/extensions
  filter: adapt-*
  manifest: plugins/manifest
cache: .adaptbuild/bundle.cache
output:
  file: build/adapt.js
  sourceMaps: true
`)

	cfg, err := (&config.FileConfigLoader{}).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, "core/js/app", cfg.Entry)
	assert.Equal(t, "src/course", cfg.BaseDir)
	assert.Equal(t, domain.RemapTable{
		{Prefix: "coreJS/", Replace: "core/js/"},
		{Prefix: "coreViews/", Replace: "core/js/views/"},
	}, cfg.Remap)
	assert.Equal(t, domain.ExternalTable{
		{Prefix: "libraries/", Marker: domain.EmptyStubMarker},
	}, cfg.External)
	assert.Equal(t, []string{"src/components", "src/extensions"}, cfg.PluginSources)
	assert.Equal(t, "adapt-*", cfg.PluginFilter)
	assert.Equal(t, "plugins/manifest", cfg.ManifestSuffix)
	assert.Equal(t, ".adaptbuild/bundle.cache", cfg.CachePath)
	assert.Equal(t, "build/adapt.js", cfg.OutputPath)
	assert.True(t, cfg.SourceMaps)
}

func TestFileConfigLoader_Defaults(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "entry: core/js/app\nbase: src\n")

	cfg, err := (&config.FileConfigLoader{}).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCachePath(), cfg.CachePath)
	assert.Equal(t, filepath.Join("build", "adapt.js"), cfg.OutputPath)
	assert.False(t, cfg.SourceMaps)
	assert.Empty(t, cfg.Remap)
	assert.Empty(t, cfg.External)
}

func TestFileConfigLoader_RuleOrderPreserved(t *testing.T) {
	t.Parallel()

	// Overlapping prefixes must survive in file order so that the more
	// specific one keeps winning first-match resolution.
	dir := writeConfig(t, `
entry: core/js/app
base: src
remap:
  - prefix: coreJS/views/
    replace: core/js/views/
  - prefix: coreJS/
    replace: core/js/
`)

	cfg, err := (&config.FileConfigLoader{}).Load(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Remap, 2)
	assert.Equal(t, "coreJS/views/", cfg.Remap[0].Prefix)
	assert.Equal(t, "coreJS/", cfg.Remap[1].Prefix)
}

func TestFileConfigLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
		meta    string
	}{
		{
			name:    "missing entry",
			content: "base: src\n",
			want:    "invalid build configuration",
			meta:    "missing_field",
		},
		{
			name:    "missing base",
			content: "entry: core/js/app\n",
			want:    "invalid build configuration",
			meta:    "missing_field",
		},
		{
			name:    "duplicate remap prefix",
			content: "entry: a\nbase: src\nremap:\n  - prefix: x/\n    replace: y/\n  - prefix: x/\n    replace: z/\n",
			want:    "invalid build configuration",
			meta:    "duplicate_remap_prefix",
		},
		{
			name:    "duplicate external prefix",
			content: "entry: a\nbase: src\nexternal:\n  - prefix: x/\n    marker: \"empty:\"\n  - prefix: x/\n    marker: other\n",
			want:    "invalid build configuration",
			meta:    "duplicate_external_prefix",
		},
		{
			name:    "empty remap prefix",
			content: "entry: a\nbase: src\nremap:\n  - prefix: \"\"\n    replace: y/\n",
			want:    "invalid build configuration",
			meta:    "remap_prefix",
		},
		{
			name:    "malformed yaml",
			content: "entry: [unclosed\n",
			want:    "failed to parse build configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := (&config.FileConfigLoader{}).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)

			if tt.meta == "" {
				return
			}
			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Contains(t, zErr.Metadata(), tt.meta)
		})
	}
}

func TestFileConfigLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := (&config.FileConfigLoader{}).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read build configuration")
}
