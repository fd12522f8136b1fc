package bundler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/resolve"
	"go.trai.ch/zerr"
)

// emit writes the bundle in dependency-first order: every module wrapped in
// a dependency-declaring factory call, external stubs declared with empty
// bodies, and the entry module required last.
func (b *Bundler) emit(modules map[string]*module, order []string, entryID string) error {
	var buf bytes.Buffer
	var sources []string

	for _, id := range order {
		m := modules[id]
		name := b.moduleName(id)

		if m.external {
			fmt.Fprintf(&buf, "define(%q, [], function() {});\n", name)
			continue
		}

		deps := make([]string, 0, len(m.deps))
		for _, dep := range m.deps {
			deps = append(deps, fmt.Sprintf("%q", b.moduleName(dep)))
		}

		fmt.Fprintf(&buf, "define(%q, [%s], function(require, exports, module) {\n", name, strings.Join(deps, ","))
		buf.Write(m.body)
		if len(m.body) > 0 && m.body[len(m.body)-1] != '\n' {
			buf.WriteByte('\n')
		}
		buf.WriteString("});\n")

		sources = append(sources, name)
	}

	if entryID != "" {
		fmt.Fprintf(&buf, "require([%q]);\n", b.moduleName(entryID))
	}

	output := filepath.FromSlash(b.cfg.AbsOutputPath())
	mapPath := output + ".map"

	if err := os.MkdirAll(filepath.Dir(output), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBundleWrite.Error()), "path", output)
	}

	if b.cfg.SourceMaps {
		fmt.Fprintf(&buf, "//# sourceMappingURL=%s\n", filepath.Base(mapPath))
		if err := b.writeSourceMap(mapPath, sources); err != nil {
			return err
		}
	} else if err := os.Remove(mapPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// A stale map from a previous run must not outlive its bundle.
		return zerr.With(zerr.Wrap(err, domain.ErrBundleWrite.Error()), "path", mapPath)
	}

	if err := os.WriteFile(output, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBundleWrite.Error()), "path", output)
	}

	return nil
}

// writeSourceMap writes a minimal v3 map listing the bundled sources.
// Position mappings are the transpilation engine's concern and stay empty
// here.
func (b *Bundler) writeSourceMap(path string, sources []string) error {
	doc := map[string]any{
		"version":  3,
		"file":     filepath.Base(strings.TrimSuffix(path, ".map")),
		"sources":  sources,
		"mappings": "",
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBundleWrite.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBundleWrite.Error()), "path", path)
	}
	return nil
}

// moduleName converts a resolved identifier to its bundled module name:
// externals keep their identifier, source modules become base-relative,
// extension-stripped slash paths.
func (b *Bundler) moduleName(id string) string {
	base := filepath.FromSlash(b.cfg.AbsBaseDir())
	rel, err := filepath.Rel(base, filepath.FromSlash(id))
	if err != nil || strings.HasPrefix(rel, "..") {
		return domain.StripSourceExtension(resolve.NormalizeSlashes(id))
	}
	return domain.StripSourceExtension(resolve.NormalizeSlashes(rel))
}
