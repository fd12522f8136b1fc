package ports

import "github.com/Milun/adapt-framework/internal/core/domain"

// ModuleResolver defines the interface for resolving module identifiers.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve turns a module request into a resolved module. It returns nil
	// for synthetic requests, deferring to the bundling engine's own
	// resolution. It never errors: an identifier that resolves to a
	// nonexistent file is passed through and surfaces later as a load
	// failure.
	Resolve(req domain.ModuleRequest) *domain.ResolvedModule
}
