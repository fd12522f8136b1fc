package ports

// ModuleTransform defines the interface for per-module body transforms run by
// the bundling engine after a module is loaded.
//
//go:generate go run go.uber.org/mock/mockgen -source=transform.go -destination=mocks/mock_transform.go -package=mocks
type ModuleTransform interface {
	// Transform returns a replacement body for the module, or nil when the
	// module passes through untouched. Synthetic modules always pass through.
	Transform(body []byte, moduleID string, synthetic bool) []byte
}
