package resolve

import (
	"strings"

	"github.com/Milun/adapt-framework/internal/core/domain"
)

// Remapper applies namespace prefix rewrites to module identifiers before
// resolution.
type Remapper struct {
	table domain.RemapTable
}

// NewRemapper creates a Remapper over the given table.
func NewRemapper(table domain.RemapTable) *Remapper {
	return &Remapper{table: table}
}

// Remap returns the identifier with the first matching prefix rule applied,
// or the identifier unchanged when no prefix matches. Exactly one rewrite
// pass: the result is never remapped again.
func (r *Remapper) Remap(moduleID string) string {
	for _, rule := range r.table {
		if strings.HasPrefix(moduleID, rule.Prefix) {
			return rule.Replace + moduleID[len(rule.Prefix):]
		}
	}
	return moduleID
}
