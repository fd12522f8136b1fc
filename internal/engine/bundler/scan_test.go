package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "define array",
			body: `define(["coreJS/adapt", "./views/menuView"], function(Adapt, MenuView) {});`,
			want: []string{"coreJS/adapt", "./views/menuView"},
		},
		{
			name: "require array",
			body: `require(["core/js/app"]);`,
			want: []string{"core/js/app"},
		},
		{
			name: "single require call",
			body: `var _ = require("underscore");`,
			want: []string{"underscore"},
		},
		{
			name: "multiline array",
			body: "define([\n  'coreJS/adapt',\n  'backbone'\n], function() {});",
			want: []string{"coreJS/adapt", "backbone"},
		},
		{
			name: "mixed forms deduplicated in source order",
			body: `define(["a", "b"], function() { var a = require("a"); var c = require("c"); });`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "no dependencies",
			body: `define([], function() {});`,
			want: nil,
		},
		{
			name: "plain script",
			body: `var x = 1;`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scanDependencies([]byte(tt.body)))
		})
	}
}
