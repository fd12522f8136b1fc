package ports

// Transpiler defines the contract with the external transpilation engine that
// turns TypeScript/ES-next syntax into target-runtime syntax. Its internals
// are out of scope for this repository; the default implementation is a
// pass-through.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Transpiler interface {
	// Transpile rewrites a module body. A failure is reported as a
	// *domain.TransformError so the diagnostic formatter can extract its
	// location.
	Transpile(path string, body []byte) ([]byte, error)
}

// Checker defines the contract with the external type checker, enabled by the
// type-check run-mode flag. A failure is reported as a *domain.CheckError.
type Checker interface {
	Check(path string, body []byte) error
}
