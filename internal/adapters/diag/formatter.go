// Package diag normalizes check and transform failures into uniform
// diagnostic reports.
package diag

import (
	"errors"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Milun/adapt-framework/internal/core/domain"
)

// transformDetail matches "path (line:column): message" at the start of a
// transform failure's message text. An optional source frame follows after a
// blank line.
var transformDetail = regexp.MustCompile(`^(.+?) \((\d+):(\d+)\):? ?(.*)`)

// Formatter produces uniform diagnostics with file paths relative to the
// working directory.
type Formatter struct {
	cwd string
}

// NewFormatter creates a Formatter relative to cwd.
func NewFormatter(cwd string) *Formatter {
	return &Formatter{cwd: cwd}
}

// Format extracts a diagnostic from err. A check failure carries its source
// location directly; a transform failure embeds location and source excerpt
// in its message text and is split out here. Any error lacking a location
// yields nil and is reported verbatim by the caller so nothing is silently
// swallowed.
func (f *Formatter) Format(err error) *domain.Diagnostic {
	var check *domain.CheckError
	if errors.As(err, &check) {
		return &domain.Diagnostic{
			Message: check.Msg,
			Line:    check.Loc.Line,
			Column:  check.Loc.Column,
			File:    f.relative(check.Loc.File),
		}
	}

	var transform *domain.TransformError
	if errors.As(err, &transform) {
		return f.splitTransform(transform.Detail)
	}

	return nil
}

func (f *Formatter) splitTransform(detail string) *domain.Diagnostic {
	head, frame, _ := strings.Cut(detail, "\n\n")

	m := transformDetail.FindStringSubmatch(head)
	if m == nil {
		return nil
	}

	line, _ := strconv.Atoi(m[2])
	column, _ := strconv.Atoi(m[3])

	return &domain.Diagnostic{
		Message:     m[4],
		Line:        line,
		Column:      column,
		File:        f.relative(m[1]),
		SourceFrame: frame,
	}
}

func (f *Formatter) relative(file string) string {
	rel, err := filepath.Rel(f.cwd, filepath.FromSlash(file))
	if err != nil {
		return file
	}
	return filepath.ToSlash(rel)
}
