package domain

// EmptyStubMarker designates an external library whose contents are
// intentionally omitted from the bundle. The module is declared but its body
// is never materialized.
const EmptyStubMarker = "empty:"

// RemapRule rewrites a namespace prefix before resolution.
type RemapRule struct {
	Prefix  string
	Replace string
}

// RemapTable is an ordered set of remap rules, unique by prefix. Matching is
// first-match-wins in insertion order, so more specific prefixes must come
// first when prefixes overlap.
type RemapTable []RemapRule

// ExternalRule declares a namespace prefix as external. The marker value
// EmptyStubMarker requests an empty stub; other markers are reserved for
// richer external-resolution policies.
type ExternalRule struct {
	Prefix string
	Marker string
}

// ExternalTable is an ordered set of external rules with the same
// first-match-wins, insertion-order semantics as RemapTable.
type ExternalTable []ExternalRule

// Externality is the classification of a module identifier against an
// ExternalTable.
type Externality struct {
	IsExternal  bool
	IsEmptyStub bool
}
