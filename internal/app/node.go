package app

import (
	"context"

	adaptercache "github.com/Milun/adapt-framework/internal/adapters/cache"
	"github.com/Milun/adapt-framework/internal/adapters/compiler"
	"github.com/Milun/adapt-framework/internal/adapters/config"
	"github.com/Milun/adapt-framework/internal/adapters/fs"
	"github.com/Milun/adapt-framework/internal/adapters/logger"
	"github.com/Milun/adapt-framework/internal/adapters/watcher"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			adaptercache.NodeID,
			fs.ProberNodeID,
			compiler.TranspilerNodeID,
			compiler.CheckerNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.BuildCache](ctx)
			if err != nil {
				return nil, err
			}
			prober, err := graft.Dep[ports.FileProber](ctx)
			if err != nil {
				return nil, err
			}
			transpiler, err := graft.Dep[ports.Transpiler](ctx)
			if err != nil {
				return nil, err
			}
			checker, err := graft.Dep[ports.Checker](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, cache, prober, transpiler, checker, w, log),
				Logger: log,
			}, nil
		},
	})
}
