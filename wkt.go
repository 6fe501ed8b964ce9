// Package wktcrs parses, validates, and re-serializes OGC WKT-2 / ISO 19162
// Coordinate Reference System descriptions.
//
// Example usage:
//
//	node, err := wktcrs.FromWKT(input, "GEODCRS")
//	if err != nil {
//	    // handle error
//	}
//	out, err := wktcrs.ToWKT(node, wktcrs.PARENS)
package wktcrs

import (
	"github.com/ha1tch/wktcrs/ast"
	"github.com/ha1tch/wktcrs/emit"
	"github.com/ha1tch/wktcrs/lexer"
	"github.com/ha1tch/wktcrs/parser"
	"github.com/ha1tch/wktcrs/token"
)

// FromWKT parses input under the default (lenient, process-wide
// strictness) Config, dispatching on the root object's own keyword;
// expectedRootKeyword (e.g. "GEODCRS") only phrases the empty-input error
// and is not checked against the root. Use FromWKTWithConfig to override strictness or logging per call.
func FromWKT(input string, expectedRootKeyword string) (ast.Node, error) {
	return parser.FromWKT(input, expectedRootKeyword, Config{})
}

// FromWKTWithConfig is FromWKT with an explicit Config.
func FromWKTWithConfig(input string, expectedRootKeyword string, cfg Config) (ast.Node, error) {
	return parser.FromWKT(input, expectedRootKeyword, cfg)
}

// Tokenize returns the flat token stream for input, without constructing an
// AST — useful for diagnostics and for embedders that want to drive the
// generic object constructor themselves via FromTokens.
func Tokenize(input string, expectedRootKeyword string) (token.Stream, error) {
	return lexer.Tokenize(input, expectedRootKeyword)
}

// FromTokens constructs a single object from ts starting at start, returning
// the node, the index just past it, and any error. Exposed for callers that
// already hold a token.Stream (e.g. from Tokenize) and want to walk it
// themselves rather than parsing a whole string at once.
func FromTokens(ts token.Stream, start int, cfg Config) (ast.Node, int, error) {
	return parser.FromTokens(ts, start, cfg)
}

// ToWKT renders node as WKT text under opts.
func ToWKT(node ast.Node, opts Options) (string, error) {
	return emit.ToWKT(node, opts)
}

// WriteWKT renders node into buf, bound by buf's capacity, returning false
// if the rendering would overflow it.
func WriteWKT(buf *Buffer, node ast.Node, opts Options) bool {
	return emit.WriteWKT(buf, node, opts)
}

// Clone returns a deep copy of node, sharing no mutable state with it.
func Clone(node ast.Node) ast.Node { return ast.Clone(node) }

// IsEqual reports whether a and b describe the same CRS under loose
// comparison (spec.md §4.6): collection order matters, but visibility and
// a handful of cosmetic fields are ignored.
func IsEqual(a, b ast.Node) bool { return ast.IsEqual(a, b) }

// IsIdentical reports whether a and b are structurally indistinguishable,
// including the fields IsEqual ignores.
func IsIdentical(a, b ast.Node) bool { return ast.IsIdentical(a, b) }

// Destroy releases node's resources. Go's garbage collector reclaims AST
// memory once it is unreferenced, so this exists only to keep the
// construct/emit/clone/equal/identical/destroy capability set complete for
// callers translating from an explicit-lifetime API; it does nothing.
func Destroy(node ast.Node) {}

// SetStrictParsing sets the process-wide default parse strictness. A parse
// may still override it per call via Config.WithStrict.
func SetStrictParsing(strict bool) { parser.SetStrictParsing(strict) }

// StrictParsing returns the process-wide default parse strictness.
func StrictParsing() bool { return parser.StrictParsing() }

// Re-exported types, so callers need only import this package for the
// common case.
type (
	Config = parser.Config
	Options = emit.Options
	Buffer  = emit.Buffer
	Node    = ast.Node
	Kind    = ast.Kind
)

// Emission option bits (spec.md §4.5), re-exported for convenience.
const (
	PARENS    = emit.PARENS
	NoIDs     = emit.NoIDs
	TopIDOnly = emit.TopIDOnly
	OldSyntax = emit.OldSyntax
	Expand    = emit.Expand
)

// NewBuffer returns a Buffer bounded to maxLen bytes (0 means unbounded).
func NewBuffer(maxLen int) *Buffer { return emit.NewBuffer(maxLen) }
