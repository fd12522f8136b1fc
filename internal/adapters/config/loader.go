// Package config provides the configuration loader for the build tool.
package config

import (
	"os"
	"path/filepath"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.BuildConfig, error) {
	name := l.Filename
	if name == "" {
		name = domain.ConfigFileName
	}
	return Load(filepath.Join(cwd, name), cwd)
}

// Load reads a configuration file from the given path and returns the
// validated build configuration rooted at root.
func Load(path, root string) (*domain.BuildConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigRead.Error()), "path", path)
	}

	var file BuildFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "path", path)
	}

	return validate(&file, root)
}

func validate(file *BuildFile, root string) (*domain.BuildConfig, error) {
	if file.Entry == "" {
		return nil, zerr.With(domain.ErrInvalidConfig, "missing_field", "entry")
	}
	if file.Base == "" {
		return nil, zerr.With(domain.ErrInvalidConfig, "missing_field", "base")
	}

	remap := make(domain.RemapTable, 0, len(file.Remap))
	seen := make(map[string]bool)
	for _, dto := range file.Remap {
		if dto.Prefix == "" || dto.Replace == "" {
			return nil, zerr.With(domain.ErrInvalidConfig, "remap_prefix", dto.Prefix)
		}
		if seen[dto.Prefix] {
			return nil, zerr.With(domain.ErrInvalidConfig, "duplicate_remap_prefix", dto.Prefix)
		}
		seen[dto.Prefix] = true
		remap = append(remap, domain.RemapRule{Prefix: dto.Prefix, Replace: dto.Replace})
	}

	external := make(domain.ExternalTable, 0, len(file.External))
	seen = make(map[string]bool)
	for _, dto := range file.External {
		if dto.Prefix == "" || dto.Marker == "" {
			return nil, zerr.With(domain.ErrInvalidConfig, "external_prefix", dto.Prefix)
		}
		if seen[dto.Prefix] {
			return nil, zerr.With(domain.ErrInvalidConfig, "duplicate_external_prefix", dto.Prefix)
		}
		seen[dto.Prefix] = true
		external = append(external, domain.ExternalRule{Prefix: dto.Prefix, Marker: dto.Marker})
	}

	cfg := &domain.BuildConfig{
		Root:           root,
		Entry:          file.Entry,
		BaseDir:        file.Base,
		Remap:          remap,
		External:       external,
		PluginSources:  file.Plugins.Sources,
		PluginFilter:   file.Plugins.Filter,
		ManifestSuffix: file.Plugins.Manifest,
		CachePath:      file.Cache,
		OutputPath:     file.Output.File,
		SourceMaps:     file.Output.SourceMaps,
	}
	if cfg.CachePath == "" {
		cfg.CachePath = domain.DefaultCachePath()
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = filepath.Join("build", "adapt.js")
	}

	return cfg, nil
}
