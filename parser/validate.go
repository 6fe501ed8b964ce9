package parser

import (
	"github.com/ha1tch/wktcrs/ast"
	"github.com/ha1tch/wktcrs/internal/strutil"
	"github.com/ha1tch/wktcrs/wkterr"
)

// validateName enforces the name-length bound: the trimmed escape length
// must be under 255 bytes. The lexer already unescapes `""` while reading
// the quoted string, so the byte length of the stored name is exactly the
// quantity the bound is defined over.
func validateName(name string, rep *wkterr.Reporter) {
	if strutil.ByteLen(name) >= 255 {
		rep.Report(wkterr.New(wkterr.NameTooLong, "name %q is %d bytes, must be under 255", name, strutil.ByteLen(name)))
	}
}

// validateCRS checks the invariants that hold across every CRS family with
// a coordinate system: axis count must equal cs.dim, every axis orientation
// must belong to cs.category's permitted set, the CRS-level unit's kind
// must match expectedUnitKind (the family's native unit, e.g. AngleUnit for
// a geodetic CRS), and any per-axis unit override must match the parent
// unit's kind. A bare, family-unspecified UNIT[...] is always accepted in
// place of the expected kind, since it carries no kind of its own to
// disagree with.
func validateCRS(cs *ast.CoordinateSystem, axes []*ast.Axis, unit ast.AnyUnit, expectedUnitKind ast.Kind, rep *wkterr.Reporter) {
	if cs == nil {
		rep.Report(wkterr.MissingRequiredError("CS"))
		return
	}
	if cs.Dim != 0 && len(axes) != cs.Dim {
		rep.Report(wkterr.New(wkterr.AxisCountMismatch, "CS declares dimension %d but %d axes were given", cs.Dim, len(axes)))
	}
	if unit != nil && unit.Kind() != expectedUnitKind && unit.Kind() != ast.KindUnit {
		rep.Report(wkterr.New(wkterr.UnitKindMismatch, "CRS unit kind %s does not match expected kind %s", unit.Kind(), expectedUnitKind))
	}

	seenOrders := map[int]bool{}
	for _, a := range axes {
		if a == nil {
			continue
		}
		if a.Orientation != "" && !ast.IsOrientationPermitted(cs.Category, a.Orientation) && a.Meridian == nil {
			rep.Report(wkterr.New(wkterr.InvalidKeyword, "orientation %q is not permitted for a %s coordinate system", a.Orientation, cs.Category))
		}
		if a.Order != nil {
			if seenOrders[a.Order.Value] {
				rep.Report(wkterr.New(wkterr.AxisDuplicateOrder, "duplicate axis order %d", a.Order.Value))
			}
			seenOrders[a.Order.Value] = true
		}
		if a.Unit != nil && unit != nil && a.Unit.Kind() != unit.Kind() {
			rep.Report(wkterr.New(wkterr.UnitKindMismatch, "axis unit kind %s does not match CRS unit kind %s", a.Unit.Kind(), unit.Kind()))
		}
	}
}
