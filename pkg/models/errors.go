package models

import "fmt"

// ParseError reports a malformed line in a model file.
type ParseError struct {
	Path  string
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: bad token %q: %v", e.Path, e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IndexError reports a face that references a vertex outside the vertex
// buffer. Index is 1-based as written in the source; Line is zero when the
// face did not come from a text file.
type IndexError struct {
	Path  string
	Line  int
	Face  int
	Index int
	Count int
}

func (e *IndexError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: vertex index %d out of range [1, %d]", e.Path, e.Line, e.Index, e.Count)
	}
	return fmt.Sprintf("%s: face %d: vertex index %d out of range [1, %d]", e.Path, e.Face, e.Index, e.Count)
}
