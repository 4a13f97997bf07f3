// SPDX-License-Identifier: MIT

// Package nussinov: sentinel error set.
// All exported functions return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)); tests match them via errors.Is.
package nussinov

import "errors"

var (
	// ErrInvalidInput is returned for malformed arguments: a sequence longer
	// than the configured maximum, a nil table, or a table, buffer or interval
	// that does not match the sequence. It is raised before any allocation.
	ErrInvalidInput = errors.New("nussinov: invalid input")

	// ErrInvalidSymbol is returned under WithStrictAlphabet when the sequence
	// holds a symbol outside {A, U, G, C}.
	ErrInvalidSymbol = errors.New("nussinov: invalid symbol")

	// ErrOutOfRange indicates a table index outside [0, n).
	ErrOutOfRange = errors.New("nussinov: index out of range")

	// ErrInternalInconsistency signals that traceback found no recurrence case
	// explaining a cell. A table produced by Solve never triggers it; seeing it
	// means the table was corrupted and the result must not be trusted.
	ErrInternalInconsistency = errors.New("nussinov: table inconsistent with recurrence")
)
