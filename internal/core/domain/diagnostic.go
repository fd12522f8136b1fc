package domain

import "fmt"

// SourceLocation points at a position inside a source file.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// Diagnostic is the uniform error report produced by the diagnostic
// formatter. File is relative to the working directory.
type Diagnostic struct {
	Message     string
	Line        int
	Column      int
	File        string
	SourceFrame string
}

// CheckError is a syntax or type-check failure. It carries its source
// location directly.
type CheckError struct {
	Msg string
	Loc SourceLocation
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s (%d:%d): %s", e.Loc.File, e.Loc.Line, e.Loc.Column, e.Msg)
}

// TransformError is a transform failure. Its location and source excerpt are
// embedded inside the message text and must be split out by the diagnostic
// formatter.
type TransformError struct {
	// Detail has the shape "path (line:column): message" optionally followed
	// by a blank line and a source frame.
	Detail string
}

func (e *TransformError) Error() string {
	return e.Detail
}
