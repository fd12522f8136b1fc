package resolve_test

import (
	"testing"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/resolve"
	"github.com/stretchr/testify/assert"
)

func TestClassifier(t *testing.T) {
	t.Parallel()

	c := resolve.NewClassifier(domain.ExternalTable{
		{Prefix: "libraries/handlebars", Marker: domain.EmptyStubMarker},
		{Prefix: "libraries", Marker: "global:"},
	})

	t.Run("unmatched identifier is not external", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, domain.Externality{}, c.Classify("core/js/adapt"))
	})

	t.Run("empty-stub marker", func(t *testing.T) {
		t.Parallel()
		got := c.Classify("libraries/handlebars")
		assert.True(t, got.IsExternal)
		assert.True(t, got.IsEmptyStub)
	})

	t.Run("other marker is external without stub", func(t *testing.T) {
		t.Parallel()
		got := c.Classify("libraries/jquery")
		assert.True(t, got.IsExternal)
		assert.False(t, got.IsEmptyStub)
	})

	t.Run("insertion order breaks overlapping prefixes", func(t *testing.T) {
		t.Parallel()
		got := c.Classify("libraries/handlebars/runtime")
		assert.True(t, got.IsEmptyStub)
	})
}
