// Package errors defines the typed errors produced while reading playbook
// files. A ParseError pinpoints the syntax break with file, line, and
// column; an ErrorList accumulates multiple errors instead of failing on
// the first.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"playlint-hq/playlint/pkg/playbook/ast"
)

// ErrorType categorizes the type of error encountered while reading a file.
type ErrorType string

const (
	ErrorTypeSyntax ErrorType = "syntax" // YAML syntax error
	ErrorTypeIO     ErrorType = "io"     // File I/O error
)

// ParseError is a rich error with location and an optional suggestion.
type ParseError struct {
	Type       ErrorType
	Message    string
	Location   ast.Location
	Suggestion string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location.String()))
	}
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// NewSyntaxError creates a syntax ParseError at the given location.
func NewSyntaxError(message string, loc ast.Location) *ParseError {
	return &ParseError{Type: ErrorTypeSyntax, Message: message, Location: loc}
}

// NewIOError creates an I/O ParseError for the given file.
func NewIOError(message string, file string) *ParseError {
	return &ParseError{Type: ErrorTypeIO, Message: message, Location: ast.Location{File: file, Line: 1, Column: 1}}
}

// AsParseError unwraps err into a *ParseError when possible.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ErrorList accumulates multiple errors encountered while processing a set
// of files.
type ErrorList struct {
	Errors []*ParseError
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]*ParseError, 0)}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *ParseError) {
	el.Errors = append(el.Errors, err)
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):\n", len(el.Errors)))
	for _, err := range el.Errors {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
