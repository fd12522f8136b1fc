package compiler

import (
	"context"

	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// TranspilerNodeID is the unique identifier for the transpiler Graft node.
	TranspilerNodeID graft.ID = "adapter.transpiler"

	// CheckerNodeID is the unique identifier for the type checker Graft node.
	CheckerNodeID graft.ID = "adapter.checker"
)

func init() {
	graft.Register(graft.Node[ports.Transpiler]{
		ID:        TranspilerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Transpiler, error) {
			return NewPassthrough(), nil
		},
	})

	graft.Register(graft.Node[ports.Checker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Checker, error) {
			return NewNoopChecker(), nil
		},
	})
}
