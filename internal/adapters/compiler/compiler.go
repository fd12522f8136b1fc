// Package compiler provides the default implementations of the external
// transpiler and type-checker contracts. The real engines live outside this
// repository; these defaults pass module bodies through untouched.
package compiler

import "github.com/Milun/adapt-framework/internal/core/ports"

var (
	_ ports.Transpiler = (*Passthrough)(nil)
	_ ports.Checker    = (*NoopChecker)(nil)
)

// Passthrough implements ports.Transpiler by returning the body unchanged.
type Passthrough struct{}

// NewPassthrough creates a pass-through transpiler.
func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

// Transpile returns the body unchanged.
func (*Passthrough) Transpile(_ string, body []byte) ([]byte, error) {
	return body, nil
}

// NoopChecker implements ports.Checker by accepting every module.
type NoopChecker struct{}

// NewNoopChecker creates a checker that accepts everything.
func NewNoopChecker() *NoopChecker {
	return &NoopChecker{}
}

// Check accepts the module.
func (*NoopChecker) Check(_ string, _ []byte) error {
	return nil
}
