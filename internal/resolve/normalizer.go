// Package resolve implements the module identifier resolution algorithm:
// namespace remapping, externality classification, extension inference, and
// the orchestrating resolver.
package resolve

import (
	"strings"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
)

// NormalizeSlashes canonicalizes path separators by replacing every backslash
// with a forward slash.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Normalizer infers missing source extensions by probing the filesystem.
type Normalizer struct {
	prober ports.FileProber
}

// NewNormalizer creates a Normalizer that probes through the given prober.
func NewNormalizer(prober ports.FileProber) *Normalizer {
	return &Normalizer{prober: prober}
}

// InferExtension returns path unchanged when it already ends in a recognized
// source extension. Otherwise it probes path with each extension in the fixed
// priority order and returns the first that exists. When nothing exists the
// input is returned unchanged; the caller treats the identifier as possibly
// nonexistent.
func (n *Normalizer) InferExtension(path string) string {
	if domain.HasSourceExtension(path) {
		return path
	}
	for _, ext := range domain.ExtensionProbeOrder {
		if n.prober.Exists(path + ext) {
			return path + ext
		}
	}
	return path
}
