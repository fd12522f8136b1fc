package resolve

import (
	"strings"

	"github.com/Milun/adapt-framework/internal/core/domain"
)

// Classifier decides whether a module identifier refers to a library that
// must remain external to the bundle.
type Classifier struct {
	table domain.ExternalTable
}

// NewClassifier creates a Classifier over the given table.
func NewClassifier(table domain.ExternalTable) *Classifier {
	return &Classifier{table: table}
}

// Classify matches the identifier against the external table, first match in
// insertion order wins. An identifier matching no prefix is not external. A
// match with the empty-stub marker is an external whose body is never
// materialized.
func (c *Classifier) Classify(moduleID string) domain.Externality {
	for _, rule := range c.table {
		if strings.HasPrefix(moduleID, rule.Prefix) {
			return domain.Externality{
				IsExternal:  true,
				IsEmptyStub: rule.Marker == domain.EmptyStubMarker,
			}
		}
	}
	return domain.Externality{}
}
