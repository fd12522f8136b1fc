// Package bundler implements the bundling engine: it walks the module graph
// from the entry module, resolving every identifier it encounters, applies
// per-module transforms, maintains the build cache, and emits a single
// bundle in the legacy asynchronous module format.
package bundler

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/dominikbraun/graph"
	"go.trai.ch/zerr"
)

// module is one vertex of the resolved module graph.
type module struct {
	id       string
	external bool
	body     []byte
	deps     []string // resolved identifiers, walk order
}

// Bundler builds the resolved module graph and emits the bundle. One build
// task, no internal parallelism: resolution calls happen synchronously as
// the graph is walked.
type Bundler struct {
	cfg        *domain.BuildConfig
	resolver   ports.ModuleResolver
	transpiler ports.Transpiler
	checker    ports.Checker
	transforms []ports.ModuleTransform
	logger     ports.Logger
}

// New creates a Bundler. Transforms run in order after a module body is
// loaded; the first transform returning a replacement wins for dependency
// scanning.
func New(
	cfg *domain.BuildConfig,
	resolver ports.ModuleResolver,
	transpiler ports.Transpiler,
	checker ports.Checker,
	logger ports.Logger,
	transforms ...ports.ModuleTransform,
) *Bundler {
	return &Bundler{
		cfg:        cfg,
		resolver:   resolver,
		transpiler: transpiler,
		checker:    checker,
		transforms: transforms,
		logger:     logger,
	}
}

// Bundle walks the graph from the entry module, writes the output bundle,
// and returns the updated cache blob. The supplied blob may be nil; a blob
// produced under a different configuration fingerprint is discarded.
func (b *Bundler) Bundle(ctx context.Context, blob *domain.CacheBlob) (*domain.CacheBlob, error) {
	fingerprint := Fingerprint(b.cfg)
	if blob == nil {
		blob = domain.NewCacheBlob(fingerprint)
	} else if blob.Fingerprint != fingerprint {
		b.logger.Info("build configuration changed, cache invalidated")
		blob = domain.NewCacheBlob(fingerprint)
	}

	modules, order, entryID, err := b.walk(ctx, blob)
	if err != nil {
		return blob, err
	}

	if err := b.emit(modules, order, entryID); err != nil {
		return blob, err
	}

	return blob, nil
}

// walk builds the module graph breadth-first from the entry module and
// returns the modules keyed by resolved identifier together with their
// dependency-first emit order and the entry's resolved identifier.
func (b *Bundler) walk(ctx context.Context, blob *domain.CacheBlob) (map[string]*module, []string, string, error) {
	entry := b.resolver.Resolve(domain.ModuleRequest{ModuleID: b.cfg.Entry})
	if entry == nil {
		return nil, nil, "", zerr.With(zerr.With(domain.ErrBuildFailed, "reason", "entry module did not resolve"), "entry", b.cfg.Entry)
	}

	modules := make(map[string]*module)
	touched := make(map[string]bool)
	queue := []*domain.ResolvedModule{entry}
	parents := map[string]string{entry.ID: ""}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, nil, "", zerr.Wrap(err, "build canceled")
		}

		res := queue[0]
		queue = queue[1:]
		if _, done := modules[res.ID]; done {
			continue
		}

		m, rawDeps, err := b.load(res, parents[res.ID], blob)
		if err != nil {
			return nil, nil, "", err
		}
		modules[res.ID] = m
		touched[res.ID] = true

		for _, raw := range rawDeps {
			dep := b.resolver.Resolve(domain.ModuleRequest{ModuleID: raw, ParentID: res.ID})
			if dep == nil {
				continue
			}
			m.deps = append(m.deps, dep.ID)
			if _, seen := parents[dep.ID]; !seen {
				parents[dep.ID] = res.ID
				queue = append(queue, dep)
			}
		}
	}

	// Drop records for modules no longer reachable so the cache does not
	// accumulate deleted files.
	for id := range blob.Modules {
		if !touched[id] {
			delete(blob.Modules, id)
		}
	}

	order, err := b.sort(modules)
	if err != nil {
		return nil, nil, "", err
	}
	return modules, order, entry.ID, nil
}

// load materializes one module body and its raw dependency identifiers,
// using the cache when the source file's mtime is unchanged, and applies the
// configured transforms.
func (b *Bundler) load(res *domain.ResolvedModule, parent string, blob *domain.CacheBlob) (*module, []string, error) {
	m := &module{id: res.ID, external: res.External}
	if res.External {
		// Declared but never materialized.
		return m, nil, nil
	}

	fsPath := filepath.FromSlash(res.ID)
	info, err := os.Stat(fsPath)
	if err != nil {
		return nil, nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrModuleLoad.Error()), "module", res.ID), "requested_by", parent)
	}
	mtime := info.ModTime().UnixNano()

	var rawDeps []string
	if rec, ok := blob.Modules[res.ID]; ok && rec.MtimeNS == mtime {
		m.body = []byte(rec.Body)
		rawDeps = rec.Deps
	} else {
		raw, err := os.ReadFile(fsPath) //nolint:gosec // path was resolved against the source tree
		if err != nil {
			return nil, nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrModuleLoad.Error()), "module", res.ID), "requested_by", parent)
		}

		body, err := b.transpiler.Transpile(res.ID, raw)
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, "transform failed"), "module", res.ID)
		}
		if b.cfg.Check {
			if err := b.checker.Check(res.ID, body); err != nil {
				return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrCheckFailed.Error()), "module", res.ID)
			}
		}

		m.body = body
		rawDeps = scanDependencies(body)
		blob.Modules[res.ID] = domain.ModuleRecord{
			Body:    string(body),
			Deps:    rawDeps,
			MtimeNS: mtime,
		}
	}

	// Transforms run after the cache so a changed plugin set regenerates the
	// manifest body even on a cache hit.
	for _, t := range b.transforms {
		if out := t.Transform(m.body, res.ID, false); out != nil {
			m.body = out
			rawDeps = scanDependencies(out)
			break
		}
	}

	return m, rawDeps, nil
}

// sort produces a stable dependency-first order: edges run from dependency
// to dependent, so the entry module comes last. An edge that would close a
// cycle is skipped with a warning and the load order of the affected modules
// is unspecified.
func (b *Bundler) sort(modules map[string]*module) ([]string, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	for id := range modules {
		if err := g.AddVertex(id); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "module", id)
		}
	}
	for id, m := range modules {
		for _, dep := range m.deps {
			if dep == id {
				continue
			}
			err := g.AddEdge(dep, id)
			switch {
			case err == nil, errors.Is(err, graph.ErrEdgeAlreadyExists):
			case errors.Is(err, graph.ErrEdgeCreatesCycle):
				b.logger.Warn("circular dependency between " + dep + " and " + id)
			default:
				return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "module", id)
			}
		}
	}

	order, err := graph.StableTopologicalSort(g, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	return order, nil
}
