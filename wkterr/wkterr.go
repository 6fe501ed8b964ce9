// Package wkterr implements the closed error taxonomy and single-diagnostic
// error reporter of spec.md §7: a constructor records the first error it
// observes, tears down any partially built subtree, and returns it to its
// caller. No exceptions, no recovery parsing after a node's first failure.
//
// The accumulate-one-diagnostic shape mirrors the teacher's
// parser.Parser.errors ([]string) collection, narrowed to "keep only the
// first" per spec.md §6.4, and typed against a closed Kind instead of bare
// strings.
package wkterr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the closed taxonomy of spec.md §7.
type Kind int

const (
	// Lexical
	EmptyString Kind = iota
	UnbalancedBrackets
	BadQuote
	// IndexOutOfRange covers both an out-of-range token.Stream start index
	// passed to FromTokens and a stray/unrecognized character the scanner cannot
	// classify into any lexeme class — spec.md §7's lexical taxonomy has no
	// separate slot for the latter, so it is folded in here (an Open
	// Question resolution, recorded in DESIGN.md).
	IndexOutOfRange

	// Syntactic
	InvalidKeyword
	UnknownKeyword
	InsufficientTokens
	TooManyTokens

	// Structural duplicates (spec.md: WKT_DUPLICATE_<CHILD>)
	DuplicateChild

	// Missing required (spec.md: MISSING_<child>)
	MissingRequired

	// Bounds
	NameTooLong
	AxisCountMismatch
	UnitKindMismatch
	AxisDuplicateOrder

	// Resource
	NoMemory
)

var kindNames = map[Kind]string{
	EmptyString:        "WKT_EMPTY_STRING",
	UnbalancedBrackets: "WKT_UNBALANCED_BRACKETS",
	BadQuote:           "WKT_BAD_QUOTE",
	IndexOutOfRange:    "WKT_INDEX_OUT_OF_RANGE",
	InvalidKeyword:     "WKT_INVALID_KEYWORD",
	UnknownKeyword:     "WKT_UNKNOWN_KEYWORD",
	InsufficientTokens: "WKT_INSUFFICIENT_TOKENS",
	TooManyTokens:      "WKT_TOO_MANY_TOKENS",
	DuplicateChild:     "WKT_DUPLICATE_CHILD",
	MissingRequired:    "MISSING_REQUIRED",
	NameTooLong:        "NAME_TOO_LONG",
	AxisCountMismatch:  "AXIS_COUNT_MISMATCH",
	UnitKindMismatch:   "UNIT_KIND_MISMATCH",
	AxisDuplicateOrder: "AXIS_DUPLICATE_ORDER",
	NoMemory:           "NO_MEMORY",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN_ERROR_KIND"
}

// Error is the single diagnostic spec.md §6.4 describes: a Kind plus a
// formatted message naming the offending keyword/value, and (for
// structural-duplicate / missing-required kinds, whose taxonomy entry is
// parameterized by which child it's about) the specific Child name so
// callers can test `err.Kind == wkterr.DuplicateChild && err.Child == "ID"`
// without parsing the message string.
type Error struct {
	Kind  Kind
	Child string // e.g. "ID", "METHOD", "CS" — empty when Kind doesn't need it
	Msg   string
	Line  int
	Col   int
	cause error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d, col %d)", e.Kind, e.Msg, e.Line, e.Col)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error of the given Kind with a formatted message, capturing
// a stack trace via pkg/errors so a failure nested four levels down a CRS
// tree can still point at the frame that rejected it.
func New(kind Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Msg: msg, cause: errors.New(msg)}
}

// Wrap attaches kind/msg context to an existing error, preserving it as the
// cause (errors.Wrap semantics) for diagnostics that originate below the
// node that ultimately reports failure.
func Wrap(cause error, kind Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Msg: msg, cause: errors.Wrap(cause, msg)}
}

// DuplicateChildError builds the WKT_DUPLICATE_<CHILD> error of spec.md §7,
// naming the offending child keyword and, where meaningful, its value (e.g.
// the duplicated EPSG code for a repeated ID).
func DuplicateChildError(child, detail string) *Error {
	msg := fmt.Sprintf("duplicate %s", child)
	if detail != "" {
		msg = fmt.Sprintf("duplicate %s: %s", child, detail)
	}
	return &Error{Kind: DuplicateChild, Child: child, Msg: msg, cause: errors.New(msg)}
}

// MissingRequiredError builds the MISSING_<child> error of spec.md §7.
func MissingRequiredError(child string) *Error {
	msg := fmt.Sprintf("missing required %s", child)
	return &Error{Kind: MissingRequired, Child: child, Msg: msg, cause: errors.New(msg)}
}

// Reporter accumulates diagnostics from an operation but, per spec.md §6.4,
// treats only the first as material: subsequent errors raised while tearing
// down a partially built subtree are recorded for introspection but never
// override the first.
type Reporter struct {
	first *Error
	all   []*Error
}

// Report records err. If this is the first error reported, it becomes the
// Reporter's material error; later calls are kept in All() for debugging
// but do not replace it.
func (r *Reporter) Report(err *Error) {
	if err == nil {
		return
	}
	r.all = append(r.all, err)
	if r.first == nil {
		r.first = err
	}
}

// First returns the first diagnostic reported, or nil if none was.
func (r *Reporter) First() *Error { return r.first }

// All returns every diagnostic reported, in report order, including ones
// suppressed by First().
func (r *Reporter) All() []*Error { return r.all }

// HasError reports whether any diagnostic has been reported.
func (r *Reporter) HasError() bool { return r.first != nil }
