package resolve_test

import (
	"testing"

	"github.com/Milun/adapt-framework/internal/core/ports/mocks"
	"github.com/Milun/adapt-framework/internal/resolve"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNormalizeSlashes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b/c", resolve.NormalizeSlashes(`a\b\c`))
	assert.Equal(t, "a/b/c", resolve.NormalizeSlashes("a/b/c"))
	assert.Equal(t, "", resolve.NormalizeSlashes(""))
}

func TestNormalizer_InferExtension(t *testing.T) {
	t.Parallel()

	t.Run("recognized extension passes through without probing", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		prober := mocks.NewMockFileProber(ctrl)

		n := resolve.NewNormalizer(prober)
		assert.Equal(t, "src/app.js", n.InferExtension("src/app.js"))
		assert.Equal(t, "src/app.ts", n.InferExtension("src/app.ts"))
	})

	t.Run("primary extension probed first", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		prober := mocks.NewMockFileProber(ctrl)
		prober.EXPECT().Exists("src/app.js").Return(true)

		n := resolve.NewNormalizer(prober)
		assert.Equal(t, "src/app.js", n.InferExtension("src/app"))
	})

	t.Run("secondary extension when primary is absent", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		prober := mocks.NewMockFileProber(ctrl)
		gomock.InOrder(
			prober.EXPECT().Exists("src/app.js").Return(false),
			prober.EXPECT().Exists("src/app.ts").Return(true),
		)

		n := resolve.NewNormalizer(prober)
		assert.Equal(t, "src/app.ts", n.InferExtension("src/app"))
	})

	t.Run("unresolvable path is returned unchanged", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		prober := mocks.NewMockFileProber(ctrl)
		prober.EXPECT().Exists(gomock.Any()).Return(false).Times(2)

		n := resolve.NewNormalizer(prober)
		assert.Equal(t, "src/missing", n.InferExtension("src/missing"))
	})
}
