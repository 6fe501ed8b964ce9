// Package parser implements the recursive-descent generic object
// constructor of spec.md §4.2/§4.3: it walks a token.Stream and builds the
// ast.Node tree, delegating per-kind assembly to a keyword-dispatch table
// the way the teacher's parser.Parser dispatches to registered
// prefixParseFn/infixParseFn closures (parser.New's registerPrefix calls).
package parser

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Config controls one parse. The zero Config is lenient (spec.md §5/§6.3):
// unknown children are skipped and logged rather than rejected, and extra
// leading tokens beyond what a kind consumes are tolerated.
type Config struct {
	// strict, when true, makes surplus leading tokens at a fixed-arity node
	// and trailing tokens after the root object TOO_MANY_TOKENS errors;
	// unknown children are skipped in either mode. It overrides the
	// package-level StrictParsing flag for this one parse only when
	// strictSet is true (via WithStrict); otherwise the package-level flag
	// applies.
	strictSet bool
	strict    bool

	// Logger receives structured diagnostics (skipped children, lenient
	// recoveries). Defaults to logrus.StandardLogger() when nil.
	Logger *logrus.Logger
}

// WithStrict returns a copy of cfg with strict parsing explicitly pinned,
// independent of the process-wide StrictParsing flag — for embedders who
// parse concurrently with differing strictness needs (spec.md §9 design
// note: "a per-parse alternative to the process-wide flag, for concurrent
// embedders").
func (cfg Config) WithStrict(strict bool) Config {
	cfg.strictSet = true
	cfg.strict = strict
	return cfg
}

// IsStrict reports whether this parse should treat lenient-recoverable
// conditions as errors.
func (cfg Config) IsStrict() bool {
	if cfg.strictSet {
		return cfg.strict
	}
	return StrictParsing()
}

func (cfg Config) logger() *logrus.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return logrus.StandardLogger()
}

// strictParsing is the process-wide default strictness (spec.md §5's
// "strict_parsing" global), read and written atomically since the package
// makes no assumption about single-threaded use.
var strictParsing atomic.Bool

// SetStrictParsing sets the process-wide default. Individual parses can
// still override it via Config.WithStrict.
func SetStrictParsing(strict bool) { strictParsing.Store(strict) }

// StrictParsing returns the process-wide default strictness.
func StrictParsing() bool { return strictParsing.Load() }
