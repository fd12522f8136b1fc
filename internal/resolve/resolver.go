package resolve

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
)

var _ ports.ModuleResolver = (*Resolver)(nil)

// Resolver orchestrates remapping, relative and bare resolution, externality
// classification, and extension inference into a single resolution step. It
// raises no errors of its own: an identifier that resolves to a nonexistent
// file is passed through and surfaces later as a load failure in the
// bundling engine.
type Resolver struct {
	root       string
	baseDir    string
	remapper   *Remapper
	classifier *Classifier
	normalizer *Normalizer
	prober     ports.FileProber
}

// NewResolver creates a Resolver for the given build configuration.
func NewResolver(cfg *domain.BuildConfig, prober ports.FileProber) *Resolver {
	return &Resolver{
		root:       NormalizeSlashes(cfg.Root),
		baseDir:    cfg.AbsBaseDir(),
		remapper:   NewRemapper(cfg.Remap),
		classifier: NewClassifier(cfg.External),
		normalizer: NewNormalizer(prober),
		prober:     prober,
	}
}

// Resolve resolves a module request. First matching rule wins:
//
//  1. Synthetic requests resolve to nil; the engine handles its own
//     pseudo-modules.
//  2. The identifier is remapped through the namespace table.
//  3. A relative identifier resolves against its parent's directory, or
//     against the base source directory for the entry module.
//  4. An identifier classified as an empty-stub external is returned as is,
//     external, with no filesystem lookup.
//  5. An identifier that does not exist as a literal path from the working
//     directory is a bare reference living under the base source directory.
//  6. Anything left is an existing absolute-ish path, collapsed to one
//     canonical slash-normalized identifier so the same module is never
//     loaded twice under two different keys.
func (r *Resolver) Resolve(req domain.ModuleRequest) *domain.ResolvedModule {
	if req.Synthetic {
		return nil
	}

	id := NormalizeSlashes(r.remapper.Remap(req.ModuleID))

	if strings.HasPrefix(id, ".") {
		dir := r.baseDir
		if req.ParentID != "" {
			dir = path.Dir(NormalizeSlashes(req.ParentID))
		}
		resolved := r.normalizer.InferExtension(join(dir, id))
		return &domain.ResolvedModule{ID: resolved}
	}

	if ext := r.classifier.Classify(id); ext.IsEmptyStub {
		return &domain.ResolvedModule{ID: id, External: true}
	}

	literal := id
	if !path.IsAbs(literal) {
		literal = join(r.root, id)
	}
	if !r.prober.Exists(literal) {
		resolved := r.normalizer.InferExtension(join(r.baseDir, id))
		return &domain.ResolvedModule{ID: resolved}
	}

	return &domain.ResolvedModule{ID: r.normalizer.InferExtension(literal)}
}

// join joins slash-normalized path fragments and cleans the result, keeping
// forward slashes on every platform.
func join(dir, p string) string {
	return NormalizeSlashes(filepath.Join(dir, filepath.FromSlash(p)))
}
