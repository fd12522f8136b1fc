package watcher

import (
	"context"

	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return New()
		},
	})
}
