package config

import (
	"context"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{Filename: domain.ConfigFileName}, nil
		},
	})
}
