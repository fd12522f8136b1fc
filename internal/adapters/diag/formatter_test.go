package diag_test

import (
	"testing"

	"github.com/Milun/adapt-framework/internal/adapters/diag"
	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestFormatter_CheckError(t *testing.T) {
	t.Parallel()

	f := diag.NewFormatter("/work/project")
	err := &domain.CheckError{
		Msg: "cannot find name 'Backbone'",
		Loc: domain.SourceLocation{
			File:   "/work/project/src/core/js/app.ts",
			Line:   12,
			Column: 5,
		},
	}

	d := f.Format(err)
	require.NotNil(t, d)
	assert.Equal(t, "cannot find name 'Backbone'", d.Message)
	assert.Equal(t, 12, d.Line)
	assert.Equal(t, 5, d.Column)
	assert.Equal(t, "src/core/js/app.ts", d.File)
	assert.Empty(t, d.SourceFrame)
}

func TestFormatter_CheckErrorWrapped(t *testing.T) {
	t.Parallel()

	f := diag.NewFormatter("/work/project")
	check := &domain.CheckError{
		Msg: "type mismatch",
		Loc: domain.SourceLocation{File: "/work/project/src/a.ts", Line: 3, Column: 1},
	}

	d := f.Format(zerr.Wrap(check, "check failed"))
	require.NotNil(t, d)
	assert.Equal(t, "type mismatch", d.Message)
	assert.Equal(t, "src/a.ts", d.File)
}

func TestFormatter_TransformError(t *testing.T) {
	t.Parallel()

	f := diag.NewFormatter("/work/project")
	err := &domain.TransformError{
		Detail: "/work/project/src/core/js/app.js (4:17): Unexpected token\n\n  4 | define([,], function() {});\n    |                 ^",
	}

	d := f.Format(err)
	require.NotNil(t, d)
	assert.Equal(t, "Unexpected token", d.Message)
	assert.Equal(t, 4, d.Line)
	assert.Equal(t, 17, d.Column)
	assert.Equal(t, "src/core/js/app.js", d.File)
	assert.Equal(t, "  4 | define([,], function() {});\n    |                 ^", d.SourceFrame)
}

func TestFormatter_TransformErrorWithoutFrame(t *testing.T) {
	t.Parallel()

	f := diag.NewFormatter("/work/project")
	err := &domain.TransformError{
		Detail: "/work/project/src/b.js (1:1): Unterminated string",
	}

	d := f.Format(err)
	require.NotNil(t, d)
	assert.Equal(t, "Unterminated string", d.Message)
	assert.Empty(t, d.SourceFrame)
}

func TestFormatter_UnrecognizedErrors(t *testing.T) {
	t.Parallel()

	f := diag.NewFormatter("/work/project")

	assert.Nil(t, f.Format(zerr.New("failed to load module")))
	assert.Nil(t, f.Format(&domain.TransformError{Detail: "no location in here"}))
}

func TestFormatter_FileOutsideWorkingDirectory(t *testing.T) {
	t.Parallel()

	f := diag.NewFormatter("/work/project")
	err := &domain.CheckError{
		Msg: "oops",
		Loc: domain.SourceLocation{File: "/elsewhere/a.ts", Line: 1, Column: 1},
	}

	d := f.Format(err)
	require.NotNil(t, d)
	assert.Equal(t, "../../elsewhere/a.ts", d.File)
}
