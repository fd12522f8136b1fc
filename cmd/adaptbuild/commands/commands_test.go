package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Milun/adapt-framework/cmd/adaptbuild/commands"
	"github.com/Milun/adapt-framework/internal/adapters/compiler"
	"github.com/Milun/adapt-framework/internal/adapters/fs"
	"github.com/Milun/adapt-framework/internal/app"
	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/Milun/adapt-framework/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// newProject writes a single-module course tree and returns its configuration.
func newProject(t *testing.T) *domain.BuildConfig {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "src", "core", "js", "app.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("define([], function() {});\n"), 0o600))

	return &domain.BuildConfig{
		Root:       dir,
		Entry:      "core/js/app",
		BaseDir:    "src",
		CachePath:  domain.DefaultCachePath(),
		OutputPath: "build/adapt.js",
	}
}

func newCLI(t *testing.T, cfg *domain.BuildConfig, buildCache ports.BuildCache) *commands.CLI {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil).AnyTimes()

	a := app.New(
		loader,
		buildCache,
		fs.NewProber(),
		compiler.NewPassthrough(),
		compiler.NewNoopChecker(),
		nil,
		nopLogger{},
	)
	return commands.New(a)
}

func TestBuild(t *testing.T) {
	cfg := newProject(t)

	ctrl := gomock.NewController(t)
	buildCache := mocks.NewMockBuildCache(ctrl)
	buildCache.EXPECT().Restore(gomock.Any(), cfg.Root).Return(nil, nil)
	buildCache.EXPECT().Save(gomock.Any(), cfg.Root, gomock.Any()).Return(nil)

	cli := newCLI(t, cfg, buildCache)
	cli.SetArgs([]string{"build"})
	require.NoError(t, cli.Execute(context.Background()))

	_, err := os.Stat(filepath.FromSlash(cfg.AbsOutputPath()))
	assert.NoError(t, err)
}

func TestBuild_SkipCacheFlag(t *testing.T) {
	cfg := newProject(t)

	// No expectations: the flag must keep the cache out of the run entirely.
	buildCache := mocks.NewMockBuildCache(gomock.NewController(t))

	cli := newCLI(t, cfg, buildCache)
	cli.SetArgs([]string{"build", "--skip-cache"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestBuild_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(nil, zerr.New("invalid build configuration"))

	a := app.New(loader, mocks.NewMockBuildCache(ctrl), fs.NewProber(),
		compiler.NewPassthrough(), compiler.NewNoopChecker(), nil, nopLogger{})

	cli := commands.New(a)
	cli.SetArgs([]string{"build"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid build configuration")
}

func TestClean(t *testing.T) {
	cfg := newProject(t)

	output := filepath.FromSlash(cfg.AbsOutputPath())
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o750))
	require.NoError(t, os.WriteFile(output, []byte("x"), 0o600))

	cli := newCLI(t, cfg, mocks.NewMockBuildCache(gomock.NewController(t)))
	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestVersion(t *testing.T) {
	cli := newCLI(t, newProject(t), mocks.NewMockBuildCache(gomock.NewController(t)))
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	cli := newCLI(t, newProject(t), mocks.NewMockBuildCache(gomock.NewController(t)))
	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestBuild_RejectsArguments(t *testing.T) {
	cli := newCLI(t, newProject(t), mocks.NewMockBuildCache(gomock.NewController(t)))
	cli.SetArgs([]string{"build", "extra"})
	require.Error(t, cli.Execute(context.Background()))
}
