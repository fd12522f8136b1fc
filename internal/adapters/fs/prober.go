// Package fs implements filesystem adapters for resolution probes.
package fs

import (
	"os"
	"path/filepath"

	"github.com/Milun/adapt-framework/internal/core/ports"
)

var _ ports.FileProber = (*Prober)(nil)

// Prober implements ports.FileProber using os.Stat.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Exists reports whether a file or directory exists at path. Paths arrive
// slash-normalized from the resolver and are converted back to the platform
// separator before the stat.
func (p *Prober) Exists(path string) bool {
	_, err := os.Stat(filepath.FromSlash(path))
	return err == nil
}
