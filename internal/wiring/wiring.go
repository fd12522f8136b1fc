// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Milun/adapt-framework/internal/adapters/cache"
	_ "github.com/Milun/adapt-framework/internal/adapters/compiler"
	_ "github.com/Milun/adapt-framework/internal/adapters/config"
	_ "github.com/Milun/adapt-framework/internal/adapters/fs"
	_ "github.com/Milun/adapt-framework/internal/adapters/logger"
	_ "github.com/Milun/adapt-framework/internal/adapters/watcher"
	// Register the app components node.
	_ "github.com/Milun/adapt-framework/internal/app"
)
