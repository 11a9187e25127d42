// Package core defines the domain error types shared by the dokdo
// command handlers. Each handler is a pure function from input files to
// output files; these errors describe the ways such a transform can be
// rejected before any output is written.
package core

import "fmt"

// SchemaError reports a table that does not have the shape a command
// requires: a missing identifier column, or two tables with no shared
// column to join on.
type SchemaError struct {
	File   string // offending input, when known
	Reason string
}

func (e *SchemaError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: %s: %s", e.File, e.Reason)
}

// ConflictError reports two merge inputs that disagree on the value of a
// shared cell. Merging never guesses which side wins.
type ConflictError struct {
	ID     string // row identifier
	Column string
	A, B   string // the two disagreeing values
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: sample %q column %q: %q vs %q", e.ID, e.Column, e.A, e.B)
}

// NamingError reports a file whose name violates an expected naming
// convention (e.g. a FASTQ file without a read-direction marker).
type NamingError struct {
	File   string
	Reason string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("naming: %s: %s", e.File, e.Reason)
}
