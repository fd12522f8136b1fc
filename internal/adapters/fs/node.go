package fs

import (
	"context"

	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/grindlemire/graft"
)

// ProberNodeID is the unique identifier for the file prober Graft node.
const ProberNodeID graft.ID = "adapter.file_prober"

func init() {
	graft.Register(graft.Node[ports.FileProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileProber, error) {
			return NewProber(), nil
		},
	})
}
