package plugins_test

import (
	"testing"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/plugins"
	"github.com/stretchr/testify/assert"
)

func TestInjector_Transform(t *testing.T) {
	t.Parallel()

	entries := []domain.PluginEntry{"core/js/plugins/myplugin"}
	i := plugins.NewInjector("/plugins.js", entries)

	t.Run("manifest body is replaced", func(t *testing.T) {
		t.Parallel()
		got := i.Transform([]byte("define([], function() { /* original */ });"), "/project/src/plugins.js", false)
		assert.Equal(t, "define([\"core/js/plugins/myplugin\"], function() {});\n", string(got))
	})

	t.Run("other modules pass through", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i.Transform([]byte("anything"), "/project/src/core/js/app.js", false))
	})

	t.Run("synthetic modules are never transformed", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i.Transform([]byte("anything"), "/project/src/plugins.js", true))
	})

	t.Run("empty suffix never matches", func(t *testing.T) {
		t.Parallel()
		none := plugins.NewInjector("", entries)
		assert.Nil(t, none.Transform([]byte("anything"), "/project/src/plugins.js", false))
	})

	t.Run("entry order is preserved", func(t *testing.T) {
		t.Parallel()
		ordered := plugins.NewInjector("/plugins.js", []domain.PluginEntry{"b/second", "a/first"})
		got := ordered.Transform(nil, "x/plugins.js", false)
		assert.Equal(t, "define([\"b/second\",\"a/first\"], function() {});\n", string(got))
	})
}
