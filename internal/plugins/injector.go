package plugins

import (
	"fmt"
	"strings"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
)

var _ ports.ModuleTransform = (*Injector)(nil)

// Injector replaces the body of the designated manifest module with a
// synthesized module declaring the full ordered plugin entry sequence as its
// dependencies. Every other module passes through untouched. The injector is
// stateless per build and performs no filesystem access: discovery happens
// once, earlier, outside this component.
type Injector struct {
	suffix  string
	entries []domain.PluginEntry
}

// NewInjector creates an Injector for the manifest module selected by the
// given path suffix.
func NewInjector(suffix string, entries []domain.PluginEntry) *Injector {
	return &Injector{suffix: suffix, entries: entries}
}

// Transform returns the synthesized manifest body when moduleID ends in the
// configured suffix, and nil otherwise. Synthetic modules are never
// transformed.
func (i *Injector) Transform(_ []byte, moduleID string, synthetic bool) []byte {
	if synthetic || i.suffix == "" || !strings.HasSuffix(moduleID, i.suffix) {
		return nil
	}

	var b strings.Builder
	b.WriteString("define([")
	for idx, entry := range i.entries {
		if idx > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%q", entry.String())
	}
	b.WriteString("], function() {});\n")
	return []byte(b.String())
}
