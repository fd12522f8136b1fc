package cache

import (
	"context"

	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the portable build cache Graft node.
const NodeID graft.ID = "adapter.build_cache"

func init() {
	graft.Register(graft.Node[ports.BuildCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildCache, error) {
			// The cache-disabled run-mode flag is applied per invocation by
			// the app layer, which skips Restore and Save entirely.
			return NewPortable(false), nil
		},
	})
}
