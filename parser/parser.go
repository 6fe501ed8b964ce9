package parser

import (
	"strconv"
	"strings"

	"github.com/ha1tch/wktcrs/ast"
	"github.com/ha1tch/wktcrs/lexer"
	"github.com/ha1tch/wktcrs/token"
	"github.com/ha1tch/wktcrs/wkterr"
)

// FromWKT tokenizes input and constructs the root object, dispatching on
// the root's own keyword (ast.LookupKeyword). expectedRootKeyword (e.g.
// "GEODCRS") only phrases the empty-input messages; the root is not checked
// against it. It is the Go analogue of the teacher's
// parser.New(lexer).ParseProgram() entrypoint.
func FromWKT(input string, expectedRootKeyword string, cfg Config) (ast.Node, error) {
	ts, err := lexer.Tokenize(input, expectedRootKeyword)
	if err != nil {
		return nil, err
	}
	if ts.Len() == 0 {
		return nil, wkterr.New(wkterr.InsufficientTokens, "empty token stream, expected %s[...]", expectedRootKeyword)
	}

	node, end, err := FromTokens(ts, 0, cfg)
	if err != nil {
		return nil, err
	}
	if end < ts.Len() {
		if cfg.IsStrict() {
			return nil, wkterr.New(wkterr.TooManyTokens, "trailing tokens after root object at index %d", end)
		}
		cfg.logger().WithField("at", end).Debug("ignoring trailing tokens after root object")
	}
	return node, nil
}

// FromTokens constructs the node whose keyword token sits at start, and
// returns the index of the first token past its subtree (token.Stream.End),
// the recursive-descent step of spec.md §4.2.
func FromTokens(ts token.Stream, start int, cfg Config) (ast.Node, int, error) {
	e := ts.At(start)
	end := ts.End(start)

	if e.Type == token.EOF {
		return nil, end, wkterr.New(wkterr.IndexOutOfRange, "start index %d is outside the token stream of %d entries", start, ts.Len())
	}
	if e.Type != token.KEYWORD {
		err := wkterr.New(wkterr.InvalidKeyword, "expected a keyword, found %s %q", e.Type, e.Str)
		err.Line, err.Col = e.Line, e.Col
		return nil, end, err
	}

	kind, ok := ast.LookupKeyword(e.Str)
	if !ok {
		err := wkterr.New(wkterr.UnknownKeyword, "unknown keyword %q", e.Str)
		err.Line, err.Col = e.Line, e.Col
		return nil, end, err
	}

	fn, ok := constructFns[kind]
	if !ok {
		return nil, end, wkterr.New(wkterr.UnknownKeyword, "no constructor registered for %s", kind)
	}

	rep := &wkterr.Reporter{}
	idxs := childEntries(ts, start)
	node, err := fn(ts, start, idxs, cfg, rep)
	if err != nil {
		return nil, end, err
	}
	if rep.HasError() {
		return nil, end, rep.First()
	}
	return node, end, nil
}

// constructFn assembles one node kind from its direct child token indices.
// idxs holds the index of every direct child (Level == start's Level + 1),
// in stream order, with the bracket punctuation itself already excluded —
// the per-kind equivalent of the teacher's prefixParseFn/infixParseFn.
type constructFn func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error)

// childEntries returns the direct children of the node whose keyword token
// sits at start: every entry at exactly start's Level+1 between start and
// token.Stream.End(start), excluding the brackets themselves.
func childEntries(ts token.Stream, start int) []int {
	level := ts.At(start).Level
	end := ts.End(start)
	var out []int
	for i := start + 1; i < end; i++ {
		e := ts.At(i)
		if e.Level != level+1 {
			continue
		}
		if e.Type == token.LBRACKET || e.Type == token.RBRACKET {
			continue
		}
		out = append(out, i)
	}
	return out
}

// kindAt resolves the keyword at idx to its Kind, logging at Debug level
// (spec.md §8.1 "unknown child tolerance") when it names no registered
// kind, so a skipped child is still observable without failing the parse.
func kindAt(ts token.Stream, idx int, cfg Config) (ast.Kind, bool) {
	e := ts.At(idx)
	if e.Type != token.KEYWORD {
		return ast.KindUnknown, false
	}
	k, ok := ast.LookupKeyword(e.Str)
	if !ok {
		cfg.logger().WithField("keyword", e.Str).WithField("line", e.Line).Debug("skipping unrecognized child keyword")
	}
	return k, ok
}

func parseFloatEntry(ts token.Stream, idx int, rep *wkterr.Reporter) float64 {
	e := ts.At(idx)
	v, err := strconv.ParseFloat(e.Str, 64)
	if err != nil {
		werr := wkterr.New(wkterr.InvalidKeyword, "expected a number, found %q", e.Str)
		werr.Line, werr.Col = e.Line, e.Col
		rep.Report(werr)
		return 0
	}
	return v
}

func parseIntEntry(ts token.Stream, idx int, rep *wkterr.Reporter) int {
	e := ts.At(idx)
	v, err := strconv.ParseFloat(e.Str, 64)
	if err != nil {
		werr := wkterr.New(wkterr.InvalidKeyword, "expected an integer, found %q", e.Str)
		werr.Line, werr.Col = e.Line, e.Col
		rep.Report(werr)
		return 0
	}
	return int(v)
}

// enforceMaxLeading checks a kind's fixed leading-token count against its
// grammar maximum (spec.md §4.2 step 4): in strict mode, surplus leading
// tokens are a hard TOO_MANY_TOKENS error; in lenient mode they are already
// silently dropped by the caller and this is a no-op.
func enforceMaxLeading(cfg Config, rep *wkterr.Reporter, kindName string, got, max int) {
	if got > max && cfg.IsStrict() {
		rep.Report(wkterr.New(wkterr.TooManyTokens, "%s: %d leading tokens given, expected at most %d", kindName, got, max))
	}
}

// splitCommon extracts the common-header children (ID/AUTHORITY, SCOPE,
// REMARK, and the four extent kinds) and a leading quoted name out of idxs,
// the way every "substantial" node kind's constructor begins (spec.md
// §4.2 step 3 "common children"). It returns the assembled Common and the
// remaining, kind-specific child indices in original order.
func splitCommon(ts token.Stream, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Common, []int) {
	var common ast.Common
	common.Visible = true

	var rest []int
	for _, ci := range idxs {
		e := ts.At(ci)
		if e.Type == token.KEYWORD {
			if k, ok := ast.LookupKeyword(e.Str); ok {
				switch k {
				case ast.KindIdentifier:
					if id := constructIdentifierAt(ts, ci, cfg, rep); id != nil {
						for _, existing := range common.IDs {
							if existing.SameAuthorityCode(id) {
								rep.Report(wkterr.DuplicateChildError("ID", id.Authority+":"+id.Code))
							}
						}
						common.IDs = append(common.IDs, id)
					}
					continue
				case ast.KindScope:
					if common.Scope != nil {
						rep.Report(wkterr.DuplicateChildError("SCOPE", ""))
					}
					common.Scope = constructScopeAt(ts, ci)
					continue
				case ast.KindRemark:
					if common.Remark != nil {
						rep.Report(wkterr.DuplicateChildError("REMARK", ""))
					}
					common.Remark = constructRemarkAt(ts, ci)
					continue
				case ast.KindAreaExtent, ast.KindBBoxExtent, ast.KindVerticalExtent, ast.KindTimeExtent:
					ext := constructExtentAt(ts, ci, k, cfg, rep)
					for _, existing := range common.Extents {
						if existing.Kind() == ext.Kind() {
							rep.Report(wkterr.DuplicateChildError("extent", k.String()))
						}
					}
					common.Extents = append(common.Extents, ext)
					continue
				}
			}
		}
		rest = append(rest, ci)
	}

	if len(rest) > 0 && ts.At(rest[0]).Type == token.STRING {
		common.Name = ts.At(rest[0]).Str
		rest = rest[1:]
	}
	validateName(common.Name, rep)

	return common, rest
}

// --- leaf / value constructors (no Common header) ---

func constructIdentifierAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.Identifier {
	idxs := childEntries(ts, idx)
	id := &ast.Identifier{}
	pos := 0
	for _, ci := range idxs {
		e := ts.At(ci)
		if e.Type == token.KEYWORD {
			if k, ok := ast.LookupKeyword(e.Str); ok {
				switch k {
				case ast.KindCitation:
					id.Citation = constructCitationAt(ts, ci)
					continue
				case ast.KindURI:
					id.URI = constructURIAt(ts, ci)
					continue
				}
			}
		}
		switch pos {
		case 0:
			id.Authority = e.Str
		case 1:
			id.Code = e.Str
		case 2:
			id.Version = e.Str
		}
		pos++
	}
	enforceMaxLeading(cfg, rep, "ID", pos, 3)
	return id
}

func constructCitationAt(ts token.Stream, idx int) *ast.Citation {
	idxs := childEntries(ts, idx)
	c := &ast.Citation{}
	if len(idxs) > 0 {
		c.Text = ts.At(idxs[0]).Str
	}
	return c
}

func constructURIAt(ts token.Stream, idx int) *ast.URI {
	idxs := childEntries(ts, idx)
	u := &ast.URI{}
	if len(idxs) > 0 {
		u.Text = ts.At(idxs[0]).Str
	}
	return u
}

func constructScopeAt(ts token.Stream, idx int) *ast.Scope {
	idxs := childEntries(ts, idx)
	s := &ast.Scope{}
	if len(idxs) > 0 {
		s.Text = ts.At(idxs[0]).Str
	}
	return s
}

func constructRemarkAt(ts token.Stream, idx int) *ast.Remark {
	idxs := childEntries(ts, idx)
	r := &ast.Remark{}
	if len(idxs) > 0 {
		r.Text = ts.At(idxs[0]).Str
	}
	return r
}

func constructAnchorAt(ts token.Stream, idx int) *ast.Anchor {
	idxs := childEntries(ts, idx)
	a := &ast.Anchor{}
	if len(idxs) > 0 {
		a.Text = ts.At(idxs[0]).Str
	}
	return a
}

func constructTimeOriginAt(ts token.Stream, idx int) *ast.TimeOrigin {
	idxs := childEntries(ts, idx)
	t := &ast.TimeOrigin{}
	if len(idxs) > 0 {
		t.Text = ts.At(idxs[0]).Str
	}
	return t
}

func constructBearingAt(ts token.Stream, idx int, rep *wkterr.Reporter) *ast.Bearing {
	idxs := childEntries(ts, idx)
	b := &ast.Bearing{}
	if len(idxs) > 0 {
		b.Value = parseFloatEntry(ts, idxs[0], rep)
	}
	return b
}

func constructOrderAt(ts token.Stream, idx int, rep *wkterr.Reporter) *ast.Order {
	idxs := childEntries(ts, idx)
	o := &ast.Order{}
	if len(idxs) > 0 {
		o.Value = parseIntEntry(ts, idxs[0], rep)
	}
	return o
}

func constructMeridianAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.Meridian {
	idxs := childEntries(ts, idx)
	m := &ast.Meridian{}
	for _, ci := range idxs {
		e := ts.At(ci)
		if e.Type == token.KEYWORD {
			if k, ok := ast.LookupKeyword(e.Str); ok && k == ast.KindAngleUnit {
				m.Unit = constructAngleUnitAt(ts, ci, cfg, rep)
				continue
			}
		}
		if e.Type == token.NUMBER {
			m.Longitude = parseFloatEntry(ts, ci, rep)
		}
	}
	return m
}

func constructOperationAccuracyAt(ts token.Stream, idx int, rep *wkterr.Reporter) *ast.OperationAccuracy {
	idxs := childEntries(ts, idx)
	o := &ast.OperationAccuracy{}
	if len(idxs) > 0 {
		o.Value = parseFloatEntry(ts, idxs[0], rep)
	}
	return o
}

func constructExtentAt(ts token.Stream, idx int, kind ast.Kind, cfg Config, rep *wkterr.Reporter) ast.Extent {
	idxs := childEntries(ts, idx)
	switch kind {
	case ast.KindAreaExtent:
		a := &ast.AreaExtent{}
		if len(idxs) > 0 {
			a.Description = ts.At(idxs[0]).Str
		}
		return a
	case ast.KindBBoxExtent:
		b := &ast.BBoxExtent{}
		vals := make([]float64, 0, 4)
		for _, ci := range idxs {
			vals = append(vals, parseFloatEntry(ts, ci, rep))
		}
		for len(vals) < 4 {
			vals = append(vals, 0)
		}
		b.South, b.West, b.North, b.East = vals[0], vals[1], vals[2], vals[3]
		return b
	case ast.KindVerticalExtent:
		v := &ast.VerticalExtent{}
		nums := make([]float64, 0, 2)
		for _, ci := range idxs {
			e := ts.At(ci)
			if e.Type == token.KEYWORD {
				if k, ok := ast.LookupKeyword(e.Str); ok && k == ast.KindLengthUnit {
					v.Unit = constructLengthUnitAt(ts, ci, cfg, rep)
					continue
				}
			}
			nums = append(nums, parseFloatEntry(ts, ci, rep))
		}
		for len(nums) < 2 {
			nums = append(nums, 0)
		}
		v.Min, v.Max = nums[0], nums[1]
		return v
	case ast.KindTimeExtent:
		t := &ast.TimeExtent{}
		strs := make([]string, 0, 2)
		for _, ci := range idxs {
			strs = append(strs, ts.At(ci).Str)
		}
		for len(strs) < 2 {
			strs = append(strs, "")
		}
		t.Start, t.End = strs[0], strs[1]
		return t
	}
	return nil
}

// --- unit constructors ---
// All six unit kinds share a shape (Common + ConversionFactor); the
// constructor below reads that shape once, and a thin per-kind wrapper
// allocates the concrete Go type the enclosing field expects. The literal
// unit keyword is not checked here. A CRS's own unit is built with its
// written kind (constructAnyUnitAt), and validateCRS reports
// WKT_UNIT_KIND_MISMATCH when that kind differs from the family's; a bare
// UNIT[...] is accepted there in place of the family's kind.
func readUnitCommon(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) (ast.Common, float64) {
	idxs := childEntries(ts, idx)
	common, rest := splitCommon(ts, idxs, cfg, rep)
	var factor float64
	if len(rest) > 0 {
		factor = parseFloatEntry(ts, rest[0], rep)
	}
	return common, factor
}

func constructAngleUnitAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.AngleUnit {
	common, factor := readUnitCommon(ts, idx, cfg, rep)
	return &ast.AngleUnit{Common: common, ConversionFactor: factor}
}

func constructLengthUnitAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.LengthUnit {
	common, factor := readUnitCommon(ts, idx, cfg, rep)
	return &ast.LengthUnit{Common: common, ConversionFactor: factor}
}

func constructScaleUnitAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.ScaleUnit {
	common, factor := readUnitCommon(ts, idx, cfg, rep)
	return &ast.ScaleUnit{Common: common, ConversionFactor: factor}
}

func constructTimeUnitAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.TimeUnit {
	common, factor := readUnitCommon(ts, idx, cfg, rep)
	return &ast.TimeUnit{Common: common, ConversionFactor: factor}
}

func constructParametricUnitAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.ParametricUnit {
	common, factor := readUnitCommon(ts, idx, cfg, rep)
	return &ast.ParametricUnit{Common: common, ConversionFactor: factor}
}

func constructGenericUnitAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) *ast.Unit {
	common, factor := readUnitCommon(ts, idx, cfg, rep)
	return &ast.Unit{Common: common, ConversionFactor: factor}
}

// constructAnyUnitAt builds whichever concrete unit type the keyword at idx
// actually names, for contexts (CS/axis/parameter unit overrides) where any
// of the six is legal (spec.md §3.2 "unit").
func constructAnyUnitAt(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) ast.AnyUnit {
	kind, _ := kindAt(ts, idx, cfg)
	switch kind {
	case ast.KindAngleUnit:
		return constructAngleUnitAt(ts, idx, cfg, rep)
	case ast.KindLengthUnit:
		return constructLengthUnitAt(ts, idx, cfg, rep)
	case ast.KindScaleUnit:
		return constructScaleUnitAt(ts, idx, cfg, rep)
	case ast.KindTimeUnit:
		return constructTimeUnitAt(ts, idx, cfg, rep)
	case ast.KindParametricUnit:
		return constructParametricUnitAt(ts, idx, cfg, rep)
	default:
		return constructGenericUnitAt(ts, idx, cfg, rep)
	}
}

// --- ellipsoid / prime meridian / method / parameter / parameter file ---

func constructEllipsoidFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	e := &ast.Ellipsoid{Common: common}
	numCount := 0
	for _, ci := range rest {
		tok := ts.At(ci)
		if tok.Type == token.KEYWORD {
			if k, ok := ast.LookupKeyword(tok.Str); ok && k == ast.KindLengthUnit {
				e.Unit = constructLengthUnitAt(ts, ci, cfg, rep)
				continue
			}
		}
		numCount++
		switch numCount {
		case 1:
			e.SemiMajorAxis = parseFloatEntry(ts, ci, rep)
		case 2:
			e.InverseFlattening = parseFloatEntry(ts, ci, rep)
		}
	}
	enforceMaxLeading(cfg, rep, "ELLIPSOID", numCount, 2)
	if e.Name == "" {
		rep.Report(wkterr.MissingRequiredError("name"))
	}
	return e, nil
}

func constructPrimeMeridianFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := &ast.PrimeMeridian{Common: common}
	numCount := 0
	for _, ci := range rest {
		tok := ts.At(ci)
		if tok.Type == token.KEYWORD {
			if k, ok := ast.LookupKeyword(tok.Str); ok && k == ast.KindAngleUnit {
				p.Unit = constructAngleUnitAt(ts, ci, cfg, rep)
				continue
			}
		}
		if tok.Type == token.NUMBER {
			numCount++
			if numCount == 1 {
				p.Longitude = parseFloatEntry(ts, ci, rep)
			}
		}
	}
	enforceMaxLeading(cfg, rep, "PRIMEM", numCount, 1)
	return p, nil
}

func constructMethodFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, _ := splitCommon(ts, idxs, cfg, rep)
	return &ast.Method{Common: common}, nil
}

func constructParameterFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := &ast.Parameter{Common: common}
	for _, ci := range rest {
		tok := ts.At(ci)
		if tok.Type == token.KEYWORD {
			if _, ok := ast.LookupKeyword(tok.Str); ok {
				p.Unit = constructAnyUnitAt(ts, ci, cfg, rep)
				continue
			}
		}
		if tok.Type == token.NUMBER {
			p.Value = parseFloatEntry(ts, ci, rep)
		}
	}
	return p, nil
}

func constructParameterFileFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := &ast.ParameterFile{Common: common}
	if len(rest) > 0 {
		p.FileName = ts.At(rest[0]).Str
	}
	return p, nil
}

// --- coordinate system / axis ---

func constructCSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	// CS[category, dimension] — its own leading "name" slot is really the
	// category keyword, and not a quoted string, so it bypasses
	// splitCommon's leading-name convention entirely.
	cs := &ast.CoordinateSystem{}
	cs.Visible = true
	pos := 0
	for _, ci := range idxs {
		tok := ts.At(ci)
		if tok.Type == token.KEYWORD {
			if k, ok := ast.LookupKeyword(tok.Str); ok {
				switch k {
				case ast.KindIdentifier:
					if id := constructIdentifierAt(ts, ci, cfg, rep); id != nil {
						cs.IDs = append(cs.IDs, id)
					}
					continue
				default:
					cs.Unit = constructAnyUnitAt(ts, ci, cfg, rep)
					continue
				}
			}
		}
		switch pos {
		case 0:
			if cat, ok := ast.LookupCSCategory(tok.Str); ok {
				cs.Category = cat
			} else {
				rep.Report(wkterr.New(wkterr.InvalidKeyword, "unknown CS category %q", tok.Str))
			}
		case 1:
			cs.Dim = parseIntEntry(ts, ci, rep)
		}
		pos++
	}
	enforceMaxLeading(cfg, rep, "CS", pos, 2)
	return cs, nil
}

func constructAxisFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	a := &ast.Axis{Common: common}

	for _, ci := range rest {
		tok := ts.At(ci)
		if tok.Type == token.KEYWORD {
			if k, ok := ast.LookupKeyword(tok.Str); ok {
				switch k {
				case ast.KindOrder:
					a.Order = constructOrderAt(ts, ci, rep)
					continue
				case ast.KindMeridian:
					a.Meridian = constructMeridianAt(ts, ci, cfg, rep)
					continue
				case ast.KindBearing:
					a.Bearing = constructBearingAt(ts, ci, rep)
					continue
				default:
					a.Unit = constructAnyUnitAt(ts, ci, cfg, rep)
					continue
				}
			}
		}
		if a.Orientation == "" {
			a.Orientation = tok.Str
		}
	}

	// with no orientation child, a legacy WKT1-style name is split at its
	// last space: the tail becomes Orientation and the head Abbreviation
	// (parentheses are kept as written). This runs only once no child
	// supplied an orientation.
	if a.Orientation == "" && a.Name != "" {
		if i := strings.LastIndexByte(a.Name, ' '); i >= 0 {
			a.Abbreviation, a.Orientation = a.Name[:i], a.Name[i+1:]
		}
	}
	return a, nil
}

// --- datums ---

func constructGeodeticDatumFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	d := &ast.GeodeticDatum{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		switch k {
		case ast.KindEllipsoid:
			if d.Ellipsoid != nil {
				rep.Report(wkterr.DuplicateChildError("ELLIPSOID", ""))
			}
			n, err := FromTokensNested(ts, ci, cfg, rep)
			if err == nil {
				d.Ellipsoid, _ = n.(*ast.Ellipsoid)
			}
		case ast.KindPrimeMeridian:
			if d.PrimeMeridian != nil {
				rep.Report(wkterr.DuplicateChildError("PRIMEM", ""))
			}
			n, err := FromTokensNested(ts, ci, cfg, rep)
			if err == nil {
				d.PrimeMeridian, _ = n.(*ast.PrimeMeridian)
			}
		case ast.KindAnchor:
			if d.Anchor != nil {
				rep.Report(wkterr.DuplicateChildError("ANCHOR", ""))
			}
			d.Anchor = constructAnchorAt(ts, ci)
		}
	}
	if d.Ellipsoid == nil {
		rep.Report(wkterr.MissingRequiredError("ELLIPSOID"))
	}
	return d, nil
}

func constructVerticalDatumFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	d := &ast.VerticalDatum{Common: common}
	for _, ci := range rest {
		if k, ok := kindAt(ts, ci, cfg); ok && k == ast.KindAnchor {
			if d.Anchor != nil {
				rep.Report(wkterr.DuplicateChildError("ANCHOR", ""))
			}
			d.Anchor = constructAnchorAt(ts, ci)
		}
	}
	return d, nil
}

func constructEngineeringDatumFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	d := &ast.EngineeringDatum{Common: common}
	for _, ci := range rest {
		if k, ok := kindAt(ts, ci, cfg); ok && k == ast.KindAnchor {
			if d.Anchor != nil {
				rep.Report(wkterr.DuplicateChildError("ANCHOR", ""))
			}
			d.Anchor = constructAnchorAt(ts, ci)
		}
	}
	return d, nil
}

func constructTemporalDatumFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	d := &ast.TemporalDatum{Common: common}
	for _, ci := range rest {
		if k, ok := kindAt(ts, ci, cfg); ok && k == ast.KindTimeOrigin {
			if d.Origin != nil {
				rep.Report(wkterr.DuplicateChildError("TIMEORIGIN", ""))
			}
			d.Origin = constructTimeOriginAt(ts, ci)
		}
	}
	return d, nil
}

func constructParametricDatumFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	d := &ast.ParametricDatum{Common: common}
	for _, ci := range rest {
		if k, ok := kindAt(ts, ci, cfg); ok && k == ast.KindAnchor {
			if d.Anchor != nil {
				rep.Report(wkterr.DuplicateChildError("ANCHOR", ""))
			}
			d.Anchor = constructAnchorAt(ts, ci)
		}
	}
	return d, nil
}

func constructImageDatumFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	d := &ast.ImageDatum{Common: common}
	for _, ci := range rest {
		tok := ts.At(ci)
		if k, ok := kindAt(ts, ci, cfg); ok && k == ast.KindAnchor {
			if d.Anchor != nil {
				rep.Report(wkterr.DuplicateChildError("ANCHOR", ""))
			}
			d.Anchor = constructAnchorAt(ts, ci)
			continue
		}
		if d.PixelInCell == "" {
			d.PixelInCell = tok.Str
		}
	}
	return d, nil
}

// FromTokensNested is FromTokens without the stream-end bookkeeping a
// top-level caller needs — the shape every per-kind assemble function uses
// to recurse into a nested object it has already located by index.
func FromTokensNested(ts token.Stream, idx int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	node, _, err := FromTokens(ts, idx, cfg)
	if err != nil {
		rep.Report(asWkterr(err))
		return nil, err
	}
	return node, nil
}

func asWkterr(err error) *wkterr.Error {
	if we, ok := err.(*wkterr.Error); ok {
		return we
	}
	return wkterr.Wrap(err, wkterr.InvalidKeyword, "%v", err)
}

// --- CRS flavors ---

// crsParts is the common shape of a single (non-compound, non-bound) CRS:
// a datum, a coordinate system, its axes, and an overriding unit. Every one
// of the six CRS-with-datum kinds assembles its `rest` into this shape and
// then type-asserts each piece to its own concrete field type.
type crsParts struct {
	datum ast.Node
	cs    *ast.CoordinateSystem
	axes  []*ast.Axis
	unit  ast.AnyUnit
}

func splitCRSParts(ts token.Stream, rest []int, datumKind ast.Kind, cfg Config, rep *wkterr.Reporter) crsParts {
	var p crsParts
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		switch {
		case k == datumKind:
			if p.datum != nil {
				rep.Report(wkterr.DuplicateChildError("DATUM", ""))
			}
			p.datum, _ = FromTokensNested(ts, ci, cfg, rep)
		case k == ast.KindCS:
			if p.cs != nil {
				rep.Report(wkterr.DuplicateChildError("CS", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			p.cs, _ = n.(*ast.CoordinateSystem)
		case k == ast.KindAxis:
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			if ax, ok := n.(*ast.Axis); ok {
				p.axes = append(p.axes, ax)
			}
		case isUnitKind(k):
			p.unit = constructAnyUnitAt(ts, ci, cfg, rep)
		}
	}
	return p
}

func isUnitKind(k ast.Kind) bool {
	switch k {
	case ast.KindAngleUnit, ast.KindLengthUnit, ast.KindScaleUnit, ast.KindTimeUnit, ast.KindParametricUnit, ast.KindUnit:
		return true
	}
	return false
}

func constructGeodeticCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := splitCRSParts(ts, rest, ast.KindGeodeticDatum, cfg, rep)
	c := &ast.GeodeticCRS{Common: common, CS: p.cs, Axes: p.axes}
	c.Datum, _ = p.datum.(*ast.GeodeticDatum)
	c.Unit, _ = p.unit.(*ast.AngleUnit)
	validateCRS(p.cs, p.axes, p.unit, ast.KindAngleUnit, rep)
	return c, nil
}

func constructProjectedCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.ProjectedCRS{Common: common}
	var unit ast.AnyUnit
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		switch {
		case k == ast.KindBaseGeodCRS:
			if c.BaseCRS != nil {
				rep.Report(wkterr.DuplicateChildError("BASEGEODCRS", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.BaseCRS, _ = n.(*ast.BaseGeodCRS)
		case k == ast.KindConversion:
			if c.Conversion != nil {
				rep.Report(wkterr.DuplicateChildError("CONVERSION", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Conversion, _ = n.(*ast.Conversion)
		case k == ast.KindCS:
			if c.CS != nil {
				rep.Report(wkterr.DuplicateChildError("CS", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.CS, _ = n.(*ast.CoordinateSystem)
		case k == ast.KindAxis:
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			if ax, ok := n.(*ast.Axis); ok {
				c.Axes = append(c.Axes, ax)
			}
		case isUnitKind(k):
			unit = constructAnyUnitAt(ts, ci, cfg, rep)
			c.Unit, _ = unit.(*ast.LengthUnit)
		}
	}
	if c.BaseCRS == nil {
		rep.Report(wkterr.MissingRequiredError("BASEGEODCRS"))
	}
	if c.Conversion == nil {
		rep.Report(wkterr.MissingRequiredError("CONVERSION"))
	}
	validateCRS(c.CS, c.Axes, unit, ast.KindLengthUnit, rep)
	return c, nil
}

func constructVerticalCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := splitCRSParts(ts, rest, ast.KindVerticalDatum, cfg, rep)
	c := &ast.VerticalCRS{Common: common, CS: p.cs, Axes: p.axes}
	c.Datum, _ = p.datum.(*ast.VerticalDatum)
	c.Unit, _ = p.unit.(*ast.LengthUnit)
	validateCRS(p.cs, p.axes, p.unit, ast.KindLengthUnit, rep)
	return c, nil
}

func constructEngineeringCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := splitCRSParts(ts, rest, ast.KindEngineeringDatum, cfg, rep)
	c := &ast.EngineeringCRS{Common: common, CS: p.cs, Axes: p.axes}
	c.Datum, _ = p.datum.(*ast.EngineeringDatum)
	c.Unit, _ = p.unit.(*ast.LengthUnit)
	validateCRS(p.cs, p.axes, p.unit, ast.KindLengthUnit, rep)
	return c, nil
}

func constructTemporalCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := splitCRSParts(ts, rest, ast.KindTemporalDatum, cfg, rep)
	c := &ast.TemporalCRS{Common: common, CS: p.cs, Axes: p.axes}
	c.Datum, _ = p.datum.(*ast.TemporalDatum)
	c.Unit, _ = p.unit.(*ast.TimeUnit)
	validateCRS(p.cs, p.axes, p.unit, ast.KindTimeUnit, rep)
	return c, nil
}

func constructParametricCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := splitCRSParts(ts, rest, ast.KindParametricDatum, cfg, rep)
	c := &ast.ParametricCRS{Common: common, CS: p.cs, Axes: p.axes}
	c.Datum, _ = p.datum.(*ast.ParametricDatum)
	c.Unit, _ = p.unit.(*ast.ParametricUnit)
	validateCRS(p.cs, p.axes, p.unit, ast.KindParametricUnit, rep)
	return c, nil
}

func constructImageCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	p := splitCRSParts(ts, rest, ast.KindImageDatum, cfg, rep)
	c := &ast.ImageCRS{Common: common, CS: p.cs, Axes: p.axes}
	c.Datum, _ = p.datum.(*ast.ImageDatum)
	c.Unit, _ = p.unit.(*ast.LengthUnit)
	validateCRS(p.cs, p.axes, p.unit, ast.KindLengthUnit, rep)
	return c, nil
}

func constructCompoundCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.CompoundCRS{Common: common}
	for _, ci := range rest {
		if _, ok := kindAt(ts, ci, cfg); ok {
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			if n != nil {
				c.Components = append(c.Components, n)
			}
		}
	}
	if len(c.Components) < 2 {
		rep.Report(wkterr.New(wkterr.InsufficientTokens, "COMPOUNDCRS requires at least two component CRSs"))
	}
	return c, nil
}

func constructBoundCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.BoundCRS{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		switch {
		case k == ast.KindAbridgedTransformation:
			if c.Transformation != nil {
				rep.Report(wkterr.DuplicateChildError("ABRIDGEDTRANSFORMATION", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Transformation, _ = n.(*ast.AbridgedTransformation)
		case c.Source == nil:
			c.Source, _ = FromTokensNested(ts, ci, cfg, rep)
		default:
			c.Target, _ = FromTokensNested(ts, ci, cfg, rep)
		}
	}
	if c.Source == nil || c.Target == nil {
		rep.Report(wkterr.New(wkterr.InsufficientTokens, "BOUNDCRS requires a source and a target CRS"))
	}
	if c.Transformation == nil {
		rep.Report(wkterr.MissingRequiredError("ABRIDGEDTRANSFORMATION"))
	}
	return c, nil
}

// --- base CRS kinds: name + datum + unit only, never CS/axes/extents ---

func constructBaseGeodCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.BaseGeodCRS{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		if k == ast.KindGeodeticDatum {
			if c.Datum != nil {
				rep.Report(wkterr.DuplicateChildError("DATUM", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Datum, _ = n.(*ast.GeodeticDatum)
		} else if isUnitKind(k) {
			c.Unit, _ = constructAnyUnitAt(ts, ci, cfg, rep).(*ast.AngleUnit)
		}
	}
	return c, nil
}

func constructBaseProjCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.BaseProjCRS{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		switch {
		case k == ast.KindBaseGeodCRS:
			if c.BaseCRS != nil {
				rep.Report(wkterr.DuplicateChildError("BASEGEODCRS", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.BaseCRS, _ = n.(*ast.BaseGeodCRS)
		case k == ast.KindConversion:
			if c.Conversion != nil {
				rep.Report(wkterr.DuplicateChildError("CONVERSION", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Conversion, _ = n.(*ast.Conversion)
		case isUnitKind(k):
			c.Unit, _ = constructAnyUnitAt(ts, ci, cfg, rep).(*ast.LengthUnit)
		}
	}
	return c, nil
}

func constructBaseVertCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.BaseVertCRS{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		if k == ast.KindVerticalDatum {
			if c.Datum != nil {
				rep.Report(wkterr.DuplicateChildError("DATUM", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Datum, _ = n.(*ast.VerticalDatum)
		} else if isUnitKind(k) {
			c.Unit, _ = constructAnyUnitAt(ts, ci, cfg, rep).(*ast.LengthUnit)
		}
	}
	return c, nil
}

func constructBaseEngCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.BaseEngCRS{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		if k == ast.KindEngineeringDatum {
			if c.Datum != nil {
				rep.Report(wkterr.DuplicateChildError("DATUM", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Datum, _ = n.(*ast.EngineeringDatum)
		} else if isUnitKind(k) {
			c.Unit, _ = constructAnyUnitAt(ts, ci, cfg, rep).(*ast.LengthUnit)
		}
	}
	return c, nil
}

func constructBaseParamCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.BaseParamCRS{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		if k == ast.KindParametricDatum {
			if c.Datum != nil {
				rep.Report(wkterr.DuplicateChildError("DATUM", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Datum, _ = n.(*ast.ParametricDatum)
		} else if isUnitKind(k) {
			c.Unit, _ = constructAnyUnitAt(ts, ci, cfg, rep).(*ast.ParametricUnit)
		}
	}
	return c, nil
}

func constructBaseTimeCRSFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.BaseTimeCRS{Common: common}
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		if k == ast.KindTemporalDatum {
			if c.Datum != nil {
				rep.Report(wkterr.DuplicateChildError("DATUM", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			c.Datum, _ = n.(*ast.TemporalDatum)
		} else if isUnitKind(k) {
			c.Unit, _ = constructAnyUnitAt(ts, ci, cfg, rep).(*ast.TimeUnit)
		}
	}
	return c, nil
}

// --- conversions / coordinate operations ---

func splitOperationParts(ts token.Stream, rest []int, cfg Config, rep *wkterr.Reporter) (*ast.Method, []*ast.Parameter, []*ast.ParameterFile) {
	var method *ast.Method
	var params []*ast.Parameter
	var files []*ast.ParameterFile
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			continue
		}
		switch k {
		case ast.KindMethod:
			if method != nil {
				rep.Report(wkterr.DuplicateChildError("METHOD", ""))
			}
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			method, _ = n.(*ast.Method)
		case ast.KindParameter:
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			if p, ok := n.(*ast.Parameter); ok {
				for _, existing := range params {
					if existing.SameName(p) {
						rep.Report(wkterr.DuplicateChildError("PARAMETER", p.Name))
					}
				}
				params = append(params, p)
			}
		case ast.KindParameterFile:
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			if f, ok := n.(*ast.ParameterFile); ok {
				for _, existing := range files {
					if existing.SameName(f) {
						rep.Report(wkterr.DuplicateChildError("PARAMETERFILE", f.Name))
					}
				}
				files = append(files, f)
			}
		}
	}
	return method, params, files
}

func constructConversionFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	method, params, files := splitOperationParts(ts, rest, cfg, rep)
	if method == nil {
		rep.Report(wkterr.MissingRequiredError("METHOD"))
	}
	return &ast.Conversion{Common: common, Method: method, Parameters: params, Files: files}, nil
}

func constructDerivingConversionFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	method, params, files := splitOperationParts(ts, rest, cfg, rep)
	if method == nil {
		rep.Report(wkterr.MissingRequiredError("METHOD"))
	}
	return &ast.DerivingConversion{Common: common, Method: method, Parameters: params, Files: files}, nil
}

func constructAbridgedTransformationFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	method, params, files := splitOperationParts(ts, rest, cfg, rep)
	if method == nil {
		rep.Report(wkterr.MissingRequiredError("METHOD"))
	}
	return &ast.AbridgedTransformation{Common: common, Method: method, Parameters: params, Files: files}, nil
}

func constructCoordOpFn(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	c := &ast.CoordOp{Common: common}
	var plain []int
	for _, ci := range rest {
		k, ok := kindAt(ts, ci, cfg)
		if !ok {
			plain = append(plain, ci)
			continue
		}
		switch k {
		case ast.KindOperationAccuracy:
			c.Accuracy = constructOperationAccuracyAt(ts, ci, rep)
		default:
			plain = append(plain, ci)
		}
	}
	// SOURCECRS and TARGETCRS are themselves keyword-tagged nested CRS
	// objects (spec.md §3.2); consume the first two full CRS objects we
	// find among the remaining children as source then target, alongside
	// method/parameters/files.
	var crsSeen int
	var opRest []int
	for _, ci := range plain {
		k, ok := kindAt(ts, ci, cfg)
		if ok && isCRSKind(k) {
			crsSeen++
			n, _ := FromTokensNested(ts, ci, cfg, rep)
			if crsSeen == 1 {
				c.SourceCRS = n
			} else {
				c.TargetCRS = n
			}
			continue
		}
		opRest = append(opRest, ci)
	}
	c.Method, c.Parameters, c.Files = splitOperationParts(ts, opRest, cfg, rep)
	if c.Method == nil {
		rep.Report(wkterr.MissingRequiredError("METHOD"))
	}
	if c.SourceCRS == nil || c.TargetCRS == nil {
		rep.Report(wkterr.New(wkterr.InsufficientTokens, "COORDINATEOPERATION requires a source and a target CRS"))
	}
	return c, nil
}

func isCRSKind(k ast.Kind) bool {
	switch k {
	case ast.KindGeodeticCRS, ast.KindProjectedCRS, ast.KindVerticalCRS, ast.KindEngineeringCRS,
		ast.KindTemporalCRS, ast.KindParametricCRS, ast.KindImageCRS, ast.KindCompoundCRS, ast.KindBoundCRS:
		return true
	}
	return false
}

// --- dispatch table ---

// constructFns mirrors the teacher's p.registerPrefix(token.X, p.parseX)
// calls in parser.New: one entry per grammar production, keyed by the Kind
// its keyword resolves to.
var constructFns = map[ast.Kind]constructFn{
	ast.KindGeodeticCRS:            constructGeodeticCRSFn,
	ast.KindProjectedCRS:           constructProjectedCRSFn,
	ast.KindVerticalCRS:            constructVerticalCRSFn,
	ast.KindEngineeringCRS:         constructEngineeringCRSFn,
	ast.KindTemporalCRS:            constructTemporalCRSFn,
	ast.KindParametricCRS:          constructParametricCRSFn,
	ast.KindImageCRS:               constructImageCRSFn,
	ast.KindCompoundCRS:            constructCompoundCRSFn,
	ast.KindBoundCRS:               constructBoundCRSFn,
	ast.KindBaseGeodCRS:            constructBaseGeodCRSFn,
	ast.KindBaseProjCRS:            constructBaseProjCRSFn,
	ast.KindBaseVertCRS:            constructBaseVertCRSFn,
	ast.KindBaseEngCRS:             constructBaseEngCRSFn,
	ast.KindBaseParamCRS:           constructBaseParamCRSFn,
	ast.KindBaseTimeCRS:            constructBaseTimeCRSFn,
	ast.KindGeodeticDatum:          constructGeodeticDatumFn,
	ast.KindVerticalDatum:          constructVerticalDatumFn,
	ast.KindEngineeringDatum:       constructEngineeringDatumFn,
	ast.KindTemporalDatum:          constructTemporalDatumFn,
	ast.KindParametricDatum:        constructParametricDatumFn,
	ast.KindImageDatum:             constructImageDatumFn,
	ast.KindEllipsoid:              constructEllipsoidFn,
	ast.KindPrimeMeridian:          constructPrimeMeridianFn,
	ast.KindCS:                     constructCSFn,
	ast.KindAxis:                   constructAxisFn,
	ast.KindConversion:             constructConversionFn,
	ast.KindDerivingConversion:     constructDerivingConversionFn,
	ast.KindCoordOp:                constructCoordOpFn,
	ast.KindAbridgedTransformation: constructAbridgedTransformationFn,
	ast.KindMethod:                 constructMethodFn,
	ast.KindParameter:              constructParameterFn,
	ast.KindParameterFile:          constructParameterFileFn,

	ast.KindAngleUnit: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		common, factor := splitCommonFactor(ts, idxs, cfg, rep)
		return &ast.AngleUnit{Common: common, ConversionFactor: factor}, nil
	},
	ast.KindLengthUnit: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		common, factor := splitCommonFactor(ts, idxs, cfg, rep)
		return &ast.LengthUnit{Common: common, ConversionFactor: factor}, nil
	},
	ast.KindScaleUnit: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		common, factor := splitCommonFactor(ts, idxs, cfg, rep)
		return &ast.ScaleUnit{Common: common, ConversionFactor: factor}, nil
	},
	ast.KindTimeUnit: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		common, factor := splitCommonFactor(ts, idxs, cfg, rep)
		return &ast.TimeUnit{Common: common, ConversionFactor: factor}, nil
	},
	ast.KindParametricUnit: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		common, factor := splitCommonFactor(ts, idxs, cfg, rep)
		return &ast.ParametricUnit{Common: common, ConversionFactor: factor}, nil
	},
	ast.KindUnit: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		common, factor := splitCommonFactor(ts, idxs, cfg, rep)
		return &ast.Unit{Common: common, ConversionFactor: factor}, nil
	},

	ast.KindIdentifier: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructIdentifierAt(ts, start, cfg, rep), nil
	},
	ast.KindCitation: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructCitationAt(ts, start), nil
	},
	ast.KindURI: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructURIAt(ts, start), nil
	},
	ast.KindScope: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructScopeAt(ts, start), nil
	},
	ast.KindRemark: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructRemarkAt(ts, start), nil
	},
	ast.KindAnchor: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructAnchorAt(ts, start), nil
	},
	ast.KindTimeOrigin: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructTimeOriginAt(ts, start), nil
	},
	ast.KindBearing: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructBearingAt(ts, start, rep), nil
	},
	ast.KindMeridian: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructMeridianAt(ts, start, cfg, rep), nil
	},
	ast.KindOrder: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructOrderAt(ts, start, rep), nil
	},
	ast.KindOperationAccuracy: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructOperationAccuracyAt(ts, start, rep), nil
	},
	ast.KindAreaExtent: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructExtentAt(ts, start, ast.KindAreaExtent, cfg, rep), nil
	},
	ast.KindBBoxExtent: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructExtentAt(ts, start, ast.KindBBoxExtent, cfg, rep), nil
	},
	ast.KindVerticalExtent: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructExtentAt(ts, start, ast.KindVerticalExtent, cfg, rep), nil
	},
	ast.KindTimeExtent: func(ts token.Stream, start int, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Node, error) {
		return constructExtentAt(ts, start, ast.KindTimeExtent, cfg, rep), nil
	},
}

// splitCommonFactor is the shared body behind the six unit dispatch-table
// entries above (readUnitCommon does the same work for contexts that
// already know their concrete Go type at the call site).
func splitCommonFactor(ts token.Stream, idxs []int, cfg Config, rep *wkterr.Reporter) (ast.Common, float64) {
	common, rest := splitCommon(ts, idxs, cfg, rep)
	var factor float64
	if len(rest) > 0 {
		factor = parseFloatEntry(ts, rest[0], rep)
	}
	return common, factor
}
