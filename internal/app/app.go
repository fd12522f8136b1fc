// Package app implements the application layer: one build run from cache
// restore through bundling to cache save.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Milun/adapt-framework/internal/adapters/diag"
	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/Milun/adapt-framework/internal/engine/bundler"
	"github.com/Milun/adapt-framework/internal/plugins"
	"github.com/Milun/adapt-framework/internal/resolve"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// settleWindow is how long watch mode waits after a change before rebuilding,
// so editors writing several files trigger one rebuild.
const settleWindow = 200 * time.Millisecond

// Components bundles the wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// BuildOptions carries the run-mode flags sourced from process invocation.
type BuildOptions struct {
	// SkipCache disables cache restore and save.
	SkipCache bool

	// Check enables the type-check pass.
	Check bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	cache        ports.BuildCache
	prober       ports.FileProber
	transpiler   ports.Transpiler
	checker      ports.Checker
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	cache ports.BuildCache,
	prober ports.FileProber,
	transpiler ports.Transpiler,
	checker ports.Checker,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		cache:        cache,
		prober:       prober,
		transpiler:   transpiler,
		checker:      checker,
		watcher:      watcher,
		logger:       logger,
	}
}

// Build executes one bundling run.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}
	_, err = a.build(ctx, cfg, nil)
	return err
}

// Watch executes an initial build and then rebuilds on source changes until
// the context is canceled. Rebuilds reuse the in-process cache blob.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	var blob *domain.CacheBlob
	run := func() {
		next, err := a.build(ctx, cfg, blob)
		if err != nil {
			a.logger.Error(err)
			return
		}
		blob = next
		a.logger.Info("build complete: " + cfg.OutputPath)
	}
	run()

	if err := a.watcher.Add(cfg.AbsBaseDir()); err != nil {
		return zerr.Wrap(err, "failed to watch source tree")
	}
	defer func() { _ = a.watcher.Close() }()

	g, ctx := errgroup.WithContext(ctx)
	trigger := make(chan struct{}, 1)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case _, ok := <-a.watcher.Events():
				if !ok {
					return nil
				}
				select {
				case trigger <- struct{}{}:
				default:
				}
			case err, ok := <-a.watcher.Errors():
				if !ok {
					return nil
				}
				a.logger.Error(err)
			}
		}
	})

	g.Go(func() error {
		timer := time.NewTimer(settleWindow)
		if !timer.Stop() {
			<-timer.C
		}
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-trigger:
				timer.Reset(settleWindow)
			case <-timer.C:
				run()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Clean deletes the cache file and the output artifacts.
func (a *App) Clean(opts BuildOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}
	for _, path := range []string{cfg.AbsCachePath(), cfg.AbsOutputPath(), cfg.AbsOutputPath() + ".map"} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to clean"), "path", path)
		}
	}
	return nil
}

func (a *App) loadConfig(opts BuildOptions) (*domain.BuildConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	cfg.SkipCache = cfg.SkipCache || opts.SkipCache
	cfg.Check = cfg.Check || opts.Check
	return cfg, nil
}

// build runs one bundling pass. A non-nil blob is reused as is; otherwise the
// persisted cache is restored first. A restore failure is reported, the build
// proceeds without a cache, and the failure is re-raised afterwards: a corrupt
// cache must mark the process failed even when the bundle itself succeeds.
func (a *App) build(ctx context.Context, cfg *domain.BuildConfig, blob *domain.CacheBlob) (*domain.CacheBlob, error) {
	entries := plugins.Discover(cfg, a.logger)

	resolver := resolve.NewResolver(cfg, a.prober)
	injector := plugins.NewInjector(cfg.ManifestSuffix, entries)
	engine := bundler.New(cfg, resolver, a.transpiler, a.checker, a.logger, injector)

	var restoreErr error
	if blob == nil && !cfg.SkipCache {
		blob, restoreErr = a.cache.Restore(cfg.AbsCachePath(), cfg.Root)
		if restoreErr != nil {
			a.logger.Error(restoreErr)
			blob = nil
		}
	}

	next, err := engine.Bundle(ctx, blob)
	if err != nil {
		return nil, a.report(cfg, err)
	}

	if !cfg.SkipCache {
		if err := a.cache.Save(cfg.AbsCachePath(), cfg.Root, next); err != nil {
			return nil, err
		}
	}

	if restoreErr != nil {
		return nil, zerr.Wrap(restoreErr, "cache restore failed")
	}
	return next, nil
}

// report routes a bundling failure through the diagnostic formatter. Errors
// without a recognizable location pass through verbatim so nothing is
// silently swallowed.
func (a *App) report(cfg *domain.BuildConfig, err error) error {
	formatter := diag.NewFormatter(cfg.Root)
	d := formatter.Format(err)
	if d == nil {
		return err
	}

	msg := fmt.Sprintf("%s (%d:%d): %s", d.File, d.Line, d.Column, d.Message)
	if d.SourceFrame != "" {
		msg += "\n" + d.SourceFrame
	}
	a.logger.Error(errors.New(msg))
	return zerr.With(domain.ErrBuildFailed, "file", d.File)
}
