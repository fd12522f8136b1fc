// Package domain contains core domain types for module resolution and bundling.
package domain

// ModuleRequest asks for the resolution of a single module identifier as seen
// from its importing module.
type ModuleRequest struct {
	// ModuleID is the identifier as written in the importing module: relative,
	// namespaced, bare, or absolute.
	ModuleID string

	// ParentID is the resolved identifier of the importing module. It is empty
	// only for the entry module.
	ParentID string

	// Synthetic marks a pseudo-module injected by the bundling engine itself.
	// Synthetic modules are not part of the source tree and are never resolved
	// against the filesystem.
	Synthetic bool
}

// ResolvedModule is the outcome of resolving a ModuleRequest. It is never
// mutated after resolution.
type ResolvedModule struct {
	// ID is an absolute, slash-normalized path, or the external library name
	// for external modules.
	ID string

	// External reports that the bundling engine must not inline this module.
	External bool
}
