// Package errors provides error handling for ontovet.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the validation error taxonomy
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMalformedRule) {
//	    // handle grammar error
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for structural validation failures. A structural error
// means the rule model itself is broken, so the whole run is aborted; no
// partial report is trustworthy once one of these is raised. Wrap these
// with errors.Wrapf to add the offending column and rule text.
var (
	// ErrMalformedRule indicates rule text that does not match the grammar,
	// such as a missing remainder for a non-presence rule type.
	ErrMalformedRule = New("malformed rule")

	// ErrColumnOutOfRange indicates a wildcard referencing a column beyond
	// the length of the current row.
	ErrColumnOutOfRange = New("column out of range")

	// ErrUnrecognizedRuleType indicates a rule-type token outside the known set.
	ErrUnrecognizedRuleType = New("unrecognized rule type")

	// ErrUnrecognizedQueryType indicates an unknown type used inside a
	// when-clause or a compound type list.
	ErrUnrecognizedQueryType = New("unrecognized query type")

	// ErrMalformedWhenClause indicates a when-clause that cannot be
	// decomposed into subject, rule type and axiom.
	ErrMalformedWhenClause = New("malformed when clause")

	// ErrNoMainClause indicates a when-guard with no preceding main clause
	// on a rule whose type requires one.
	ErrNoMainClause = New("when clause without main clause")

	// ErrInvalidWhenType indicates a when-clause using a rule type outside
	// the query category.
	ErrInvalidWhenType = New("invalid when-clause type")

	// ErrInvalidPresenceValue indicates a presence rule whose literal is not
	// a recognized truth token.
	ErrInvalidPresenceValue = New("invalid presence rule value")
)

// IsStructural reports whether err is or wraps one of the fatal
// validation-setup sentinels.
func IsStructural(err error) bool {
	return err != nil && IsAny(err,
		ErrMalformedRule,
		ErrColumnOutOfRange,
		ErrUnrecognizedRuleType,
		ErrUnrecognizedQueryType,
		ErrMalformedWhenClause,
		ErrNoMainClause,
		ErrInvalidWhenType,
		ErrInvalidPresenceValue,
	)
}
