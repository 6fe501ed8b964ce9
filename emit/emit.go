// Package emit implements the WKT-2 serializer of spec.md §4.5: turning an
// ast.Node back into its textual representation, depth-first, in the
// canonical child order for each kind. The per-kind dispatch mirrors the
// teacher's ast.Node.String() methods (ast/ast.go: each node type builds its
// own textual form by concatenating its children's), generalized from one
// fixed syntax to a bitfield of Options (PARENS, NO_IDS, TOP_ID_ONLY,
// OLD_SYNTAX, EXPAND) instead of the teacher's single hardcoded rendering.
package emit

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ha1tch/wktcrs/ast"
	"github.com/ha1tch/wktcrs/internal/strutil"
)

// Options is the emitter's bitfield (spec.md §4.5).
type Options uint

const (
	// PARENS uses ( ) instead of [ ] for every bracket pair.
	PARENS Options = 1 << iota
	// NoIDs elides every ID child, at every depth.
	NoIDs
	// TopIDOnly emits ID children on the root node only.
	TopIDOnly
	// OldSyntax produces WKT-1-compatible output; kinds with no WKT-1 analog
	// emit nothing.
	OldSyntax
	// Expand pretty-prints: after the flat form is built, it is reindented
	// by bracket depth.
	Expand
)

// Buffer is a growable writer bound by a maximum length, replacing the
// original's fixed OGC_TBUF with a strings.Builder and an enforced cap,
// keeping the "emission can run out of room" failure mode without a
// fixed-size array. A write that would exceed the cap fails instead of
// truncating.
type Buffer struct {
	b        strings.Builder
	maxLen   int
	overflow bool
}

// NewBuffer returns a Buffer that fails once its content would exceed
// maxLen bytes. maxLen <= 0 means unbounded.
func NewBuffer(maxLen int) *Buffer {
	return &Buffer{maxLen: maxLen}
}

// WriteString appends s, reporting false (and latching Overflowed) if doing
// so would exceed the buffer's bound.
func (buf *Buffer) WriteString(s string) bool {
	if buf.overflow {
		return false
	}
	if buf.maxLen > 0 && buf.b.Len()+len(s) > buf.maxLen {
		buf.overflow = true
		return false
	}
	buf.b.WriteString(s)
	return true
}

// String returns the buffer's content so far.
func (buf *Buffer) String() string { return buf.b.String() }

// Overflowed reports whether any write exceeded the buffer's bound.
func (buf *Buffer) Overflowed() bool { return buf.overflow }

// ToWKT renders n per opts, nil-safe at both ends: a nil n with no error
// renders as empty output (spec.md §9's first open question, resolved this
// way — see DESIGN.md). An OLD_SYNTAX root kind with no WKT-1 analog, like
// an invisible root, also renders as empty output with no error.
func ToWKT(n ast.Node, opts Options) (string, error) {
	if isNilNode(n) {
		return "", nil
	}
	s, ok := render(n, opts&^Expand, true)
	if !ok {
		return "", fmt.Errorf("emit: %s has no representation under the given options", n.Kind())
	}
	if opts&Expand != 0 {
		s = reindent(s, opts&PARENS != 0)
	}
	return s, nil
}

// WriteWKT is the bounded-buffer entrypoint (spec.md §4.5's to_wkt(node,
// buffer, options, buflen) → ok) for callers who want the fixed-capacity
// failure mode instead of an unbounded Go string.
func WriteWKT(buf *Buffer, n ast.Node, opts Options) bool {
	if buf == nil {
		return false
	}
	if isNilNode(n) {
		return true
	}
	s, ok := render(n, opts&^Expand, true)
	if !ok {
		return false
	}
	if opts&Expand != 0 {
		s = reindent(s, opts&PARENS != 0)
	}
	return buf.WriteString(s)
}

func isNilNode(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func brackets(opts Options) (string, string) {
	if opts&PARENS != 0 {
		return "(", ")"
	}
	return "[", "]"
}

func quote(s string) string { return `"` + strutil.Escape(s) + `"` }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func keyword(kind ast.Kind, opts Options) (string, bool) {
	if opts&OldSyntax != 0 {
		if !hasOldSyntax(kind) {
			return "", false
		}
		if alt, ok := oldSyntaxKeyword[kind]; ok {
			return alt, true
		}
	}
	return ast.CanonicalKeyword(kind), true
}

// render is the depth-first dispatcher. It returns ("", true) for a nil or
// invisible node (spec.md §4.5 "nodes with visible == false emit the empty
// string"), and also for an OLD_SYNTAX kind with no WKT-1 analog. It
// returns ("", false) for a node type it has no case for.
func render(n ast.Node, opts Options, top bool) (string, bool) {
	if isNilNode(n) {
		return "", true
	}
	if cv, ok := n.(interface{ IsVisible() bool }); ok && !cv.IsVisible() {
		return "", true
	}

	kw, ok := keyword(n.Kind(), opts)
	if !ok {
		return "", true // no WKT-1 analog: silently absent, per spec.md §4.5
	}
	open, close := brackets(opts)

	switch v := n.(type) {
	case *ast.GeodeticCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Datum, v.CS), axisParts(opts, v.Axes), nodeParts(opts, v.Unit))
	case *ast.ProjectedCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.BaseCRS, v.Conversion, v.CS), axisParts(opts, v.Axes), nodeParts(opts, v.Unit))
	case *ast.VerticalCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Datum, v.CS), axisParts(opts, v.Axes), nodeParts(opts, v.Unit))
	case *ast.EngineeringCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Datum, v.CS), axisParts(opts, v.Axes), nodeParts(opts, v.Unit))
	case *ast.TemporalCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Datum, v.CS), axisParts(opts, v.Axes), nodeParts(opts, v.Unit))
	case *ast.ParametricCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Datum, v.CS), axisParts(opts, v.Axes), nodeParts(opts, v.Unit))
	case *ast.ImageCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Datum, v.CS), axisParts(opts, v.Axes), nodeParts(opts, v.Unit))
	case *ast.CompoundCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Components...))
	case *ast.BoundCRS:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Source, v.Target, v.Transformation))
	case *ast.BaseGeodCRS:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			nodeParts(opts, v.Datum, v.Unit))
	case *ast.BaseProjCRS:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			nodeParts(opts, v.BaseCRS, v.Conversion, v.Unit))
	case *ast.BaseVertCRS:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			nodeParts(opts, v.Datum, v.Unit))
	case *ast.BaseEngCRS:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			nodeParts(opts, v.Datum, v.Unit))
	case *ast.BaseParamCRS:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			nodeParts(opts, v.Datum, v.Unit))
	case *ast.BaseTimeCRS:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			nodeParts(opts, v.Datum, v.Unit))

	case *ast.GeodeticDatum:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Ellipsoid, v.PrimeMeridian, v.Anchor))
	case *ast.VerticalDatum:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark, nodeParts(opts, v.Anchor))
	case *ast.EngineeringDatum:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark, nodeParts(opts, v.Anchor))
	case *ast.TemporalDatum:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark, nodeParts(opts, v.Origin))
	case *ast.ParametricDatum:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark, nodeParts(opts, v.Anchor))
	case *ast.ImageDatum:
		var lit []string
		if v.PixelInCell != "" {
			lit = []string{quote(v.PixelInCell)}
		}
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark, lit, nodeParts(opts, v.Anchor))

	case *ast.Ellipsoid:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			[]string{formatFloat(v.SemiMajorAxis), formatFloat(v.InverseFlattening)}, nodeParts(opts, v.Unit))
	case *ast.PrimeMeridian:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			[]string{formatFloat(v.Longitude)}, nodeParts(opts, v.Unit))

	case *ast.CoordinateSystem:
		parts := append([]string{v.Category.String(), strconv.Itoa(v.Dim)}, nodeParts(opts, v.Unit)...)
		parts = append(parts, nodeParts(opts, identsAsNodes(v.IDs)...)...)
		return joinContainer(kw, open, close, parts), true
	case *ast.Axis:
		name := v.Name
		var lit []string
		if v.Orientation != "" {
			lit = []string{v.Orientation}
		}
		if name == "" {
			// anonymous axis: fold the orientation into the name literal
			// instead of emitting it a second time as a bare child.
			name = strings.TrimSpace(v.Abbreviation + " " + v.Orientation)
			lit = nil
		}
		return container(kw, open, close, name, opts, top, nil, nil, nil, nil,
			lit, nodeParts(opts, v.Order, v.Unit, v.Meridian, v.Bearing))

	case *ast.AngleUnit:
		return unitWKT(kw, open, close, v.Name, v.ConversionFactor, v.IDs, opts, top)
	case *ast.LengthUnit:
		return unitWKT(kw, open, close, v.Name, v.ConversionFactor, v.IDs, opts, top)
	case *ast.ScaleUnit:
		return unitWKT(kw, open, close, v.Name, v.ConversionFactor, v.IDs, opts, top)
	case *ast.TimeUnit:
		return unitWKT(kw, open, close, v.Name, v.ConversionFactor, v.IDs, opts, top)
	case *ast.ParametricUnit:
		return unitWKT(kw, open, close, v.Name, v.ConversionFactor, v.IDs, opts, top)
	case *ast.Unit:
		return unitWKT(kw, open, close, v.Name, v.ConversionFactor, v.IDs, opts, top)

	case *ast.Conversion:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Method), nodeParts(opts, paramsAsNodes(v.Parameters)...), nodeParts(opts, filesAsNodes(v.Files)...))
	case *ast.DerivingConversion:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Method), nodeParts(opts, paramsAsNodes(v.Parameters)...), nodeParts(opts, filesAsNodes(v.Files)...))
	case *ast.CoordOp:
		var acc []string
		if v.Accuracy != nil {
			akw, _ := keyword(ast.KindOperationAccuracy, opts)
			acc = []string{akw + open + formatFloat(v.Accuracy.Value) + close}
		}
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.SourceCRS, v.TargetCRS, v.Method),
			nodeParts(opts, paramsAsNodes(v.Parameters)...), nodeParts(opts, filesAsNodes(v.Files)...), acc)
	case *ast.AbridgedTransformation:
		return container(kw, open, close, v.Name, opts, top, v.Scope, v.Extents, v.IDs, v.Remark,
			nodeParts(opts, v.Method), nodeParts(opts, paramsAsNodes(v.Parameters)...), nodeParts(opts, filesAsNodes(v.Files)...))

	case *ast.Method:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil)
	case *ast.Parameter:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil,
			[]string{formatFloat(v.Value)}, nodeParts(opts, v.Unit))
	case *ast.ParameterFile:
		return container(kw, open, close, v.Name, opts, top, nil, nil, v.IDs, nil, []string{quote(v.FileName)})
	case *ast.OperationAccuracy:
		return kw + open + formatFloat(v.Value) + close, true

	case *ast.Identifier:
		if opts&NoIDs != 0 {
			return "", true
		}
		parts := []string{quote(v.Authority), quote(v.Code)}
		if v.Version != "" {
			parts = append(parts, quote(v.Version))
		}
		parts = append(parts, nodeParts(opts, v.Citation, v.URI)...)
		return joinContainer(kw, open, close, parts), true
	case *ast.Citation:
		return kw + open + quote(v.Text) + close, true
	case *ast.URI:
		return kw + open + quote(v.Text) + close, true
	case *ast.Scope:
		return kw + open + quote(v.Text) + close, true
	case *ast.Remark:
		return kw + open + quote(v.Text) + close, true
	case *ast.Anchor:
		return kw + open + quote(v.Text) + close, true
	case *ast.TimeOrigin:
		return kw + open + quote(v.Text) + close, true
	case *ast.Bearing:
		return kw + open + formatFloat(v.Value) + close, true
	case *ast.Meridian:
		parts := append([]string{formatFloat(v.Longitude)}, nodeParts(opts, v.Unit)...)
		return joinContainer(kw, open, close, parts), true
	case *ast.Order:
		return kw + open + strconv.Itoa(v.Value) + close, true

	case *ast.AreaExtent:
		return kw + open + quote(v.Description) + close, true
	case *ast.BBoxExtent:
		return kw + open + fmt.Sprintf("%s,%s,%s,%s", formatFloat(v.South), formatFloat(v.West), formatFloat(v.North), formatFloat(v.East)) + close, true
	case *ast.VerticalExtent:
		parts := append([]string{formatFloat(v.Min), formatFloat(v.Max)}, nodeParts(opts, v.Unit)...)
		return joinContainer(kw, open, close, parts), true
	case *ast.TimeExtent:
		return kw + open + quote(v.Start) + "," + quote(v.End) + close, true
	}

	return "", false
}

func unitWKT(kw, open, close, name string, factor float64, ids []*ast.Identifier, opts Options, top bool) (string, bool) {
	return container(kw, open, close, name, opts, top, nil, nil, ids, nil, []string{formatFloat(factor)})
}

// container assembles a node's textual form: KEYWORD[ name, literals...,
// children..., scope, extents, ids, remark ] — the canonical order of
// spec.md §4.5 ("datum → cs → axes → unit → scope → extents → ids →
// remark, adapted per kind"), with the name and any fixed-position literal
// tokens first. literalsAndChildren is a variadic list of already-rendered
// []string groups (each element from nodeParts/axisParts, or a literal
// slice), concatenated in call order.
func container(kw, open, close, name string, opts Options, top bool, scope *ast.Scope, extents []ast.Extent, ids []*ast.Identifier, remark *ast.Remark, literalsAndChildren ...[]string) (string, bool) {
	var parts []string
	if name != "" {
		parts = append(parts, quote(name))
	}
	for _, group := range literalsAndChildren {
		parts = append(parts, group...)
	}
	if scope != nil {
		parts = append(parts, mustRender(scope, opts, false))
	}
	for _, e := range extents {
		parts = append(parts, mustRender(e, opts, false))
	}
	if opts&NoIDs == 0 && (top || opts&TopIDOnly == 0) {
		for _, id := range ids {
			if s, ok := render(id, opts, false); ok && s != "" {
				parts = append(parts, s)
			}
		}
	}
	if remark != nil {
		parts = append(parts, mustRender(remark, opts, false))
	}
	return joinContainer(kw, open, close, parts), true
}

func mustRender(n ast.Node, opts Options, top bool) string {
	s, _ := render(n, opts, top)
	return s
}

func joinContainer(kw, open, close string, parts []string) string {
	var b strings.Builder
	b.WriteString(kw)
	b.WriteString(open)
	wrote := false
	for _, p := range parts {
		if p == "" {
			continue
		}
		if wrote {
			b.WriteString(",")
		}
		b.WriteString(p)
		wrote = true
	}
	b.WriteString(close)
	return b.String()
}

// nodeParts renders each node and returns the non-empty results, in order.
func nodeParts(opts Options, nodes ...ast.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s, ok := render(n, opts, false); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func axisParts(opts Options, axes []*ast.Axis) []string {
	out := make([]string, 0, len(axes))
	for _, a := range axes {
		if s, ok := render(a, opts, false); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func paramsAsNodes(ps []*ast.Parameter) []ast.Node {
	out := make([]ast.Node, 0, len(ps))
	for _, p := range ps {
		out = append(out, p)
	}
	return out
}

func filesAsNodes(fs []*ast.ParameterFile) []ast.Node {
	out := make([]ast.Node, 0, len(fs))
	for _, f := range fs {
		out = append(out, f)
	}
	return out
}

func identsAsNodes(ids []*ast.Identifier) []ast.Node {
	out := make([]ast.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}

// oldSyntaxKeyword maps a Kind to its WKT-1 spelling, for the subset of
// kinds that have one.
var oldSyntaxKeyword = map[ast.Kind]string{
	ast.KindGeodeticCRS:   "GEOGCS",
	ast.KindProjectedCRS:  "PROJCS",
	ast.KindVerticalCRS:   "VERT_CS",
	ast.KindGeodeticDatum: "DATUM",
	ast.KindEllipsoid:     "SPHEROID",
	ast.KindPrimeMeridian: "PRIMEM",
	ast.KindAxis:          "AXIS",
	ast.KindParameter:     "PARAMETER",
	ast.KindMethod:        "PROJECTION",
	ast.KindCompoundCRS:   "COMPD_CS",
	ast.KindIdentifier:    "AUTHORITY",
}

// oldSyntaxSupported is the set of kinds with a WKT-1 analog; everything
// else (WKT-2-only CRS flavors, their datums and base-CRS wrappers, the
// coordinate-operation family) has none (spec.md §4.5 "nodes without a
// WKT-1 analog emit nothing").
var oldSyntaxSupported = map[ast.Kind]bool{
	ast.KindGeodeticCRS: true, ast.KindProjectedCRS: true, ast.KindVerticalCRS: true,
	ast.KindGeodeticDatum: true, ast.KindVerticalDatum: true,
	ast.KindEllipsoid: true, ast.KindPrimeMeridian: true,
	ast.KindCS: true, ast.KindAxis: true,
	ast.KindAngleUnit: true, ast.KindLengthUnit: true, ast.KindScaleUnit: true, ast.KindUnit: true,
	ast.KindConversion: true, ast.KindMethod: true, ast.KindParameter: true, ast.KindParameterFile: true,
	ast.KindIdentifier: true, ast.KindCitation: true, ast.KindScope: true, ast.KindRemark: true,
	ast.KindAreaExtent: true, ast.KindBBoxExtent: true,
	ast.KindCompoundCRS:  true,
	ast.KindBaseGeodCRS:  true,
	ast.KindOrder:        false,
}

func hasOldSyntax(kind ast.Kind) bool { return oldSyntaxSupported[kind] }

// reindent pretty-prints a flat rendering by bracket depth (spec.md §4.5's
// EXPAND: "after the flat form is built, reindent using bracket depth").
// It walks the string tracking quote state so that brackets and commas
// inside a quoted name never affect indentation — quotes are escaped as a
// doubled `""`, matching strutil.Escape/Unescape.
func reindent(s string, parens bool) string {
	open, close := byte('['), byte(']')
	if parens {
		open, close = '(', ')'
	}
	var b strings.Builder
	depth := 0
	inQuote := false
	writeIndent := func() {
		b.WriteByte('\n')
		for i := 0; i < depth; i++ {
			b.WriteString("  ")
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuote {
			b.WriteByte(c)
			if c == '"' {
				if i+1 < len(s) && s[i+1] == '"' {
					b.WriteByte('"')
					i++
					continue
				}
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
			b.WriteByte(c)
		case open:
			depth++
			b.WriteByte(c)
			writeIndent()
		case close:
			depth--
			writeIndent()
			b.WriteByte(c)
		case ',':
			b.WriteByte(c)
			writeIndent()
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
