package ast

import "reflect"

// IsEqual reports whether a and b denote the same object: same kind and the
// same identifying/semantic fields, ignoring presentation metadata (scope,
// extents, ids, remark, visibility) per spec.md §8.1. It is reflexive and
// symmetric, and IsIdentical(a, b) implies IsEqual(a, b) — the "refinement"
// relationship spec.md §8.1 requires.
func IsEqual(a, b Node) bool { return compareNodes(a, b, false) }

// IsIdentical reports whether a and b are structurally equal down to
// presentation metadata — the strict comparison of spec.md §8.1.
func IsIdentical(a, b Node) bool { return compareNodes(a, b, true) }

// isNilNode reports whether n is a nil interface, or a non-nil interface
// wrapping a nil pointer — Go's classic "typed nil" trap, unavoidable here
// because struct fields are declared as concrete pointer types (*Ellipsoid,
// *GeodeticDatum, ...) and widen to the Node interface at the call site.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func compareNodes(a, b Node, strict bool) bool {
	aNil, bNil := isNilNode(a), isNilNode(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *GeodeticCRS:
		bv := b.(*GeodeticCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			compareNodes(av.CS, bv.CS, strict) &&
			axesCompare(av.Axes, bv.Axes, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *ProjectedCRS:
		bv := b.(*ProjectedCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.BaseCRS, bv.BaseCRS, strict) &&
			compareNodes(av.Conversion, bv.Conversion, strict) &&
			compareNodes(av.CS, bv.CS, strict) &&
			axesCompare(av.Axes, bv.Axes, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *VerticalCRS:
		bv := b.(*VerticalCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			compareNodes(av.CS, bv.CS, strict) &&
			axesCompare(av.Axes, bv.Axes, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *EngineeringCRS:
		bv := b.(*EngineeringCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			compareNodes(av.CS, bv.CS, strict) &&
			axesCompare(av.Axes, bv.Axes, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *TemporalCRS:
		bv := b.(*TemporalCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			compareNodes(av.CS, bv.CS, strict) &&
			axesCompare(av.Axes, bv.Axes, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *ParametricCRS:
		bv := b.(*ParametricCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			compareNodes(av.CS, bv.CS, strict) &&
			axesCompare(av.Axes, bv.Axes, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *ImageCRS:
		bv := b.(*ImageCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			compareNodes(av.CS, bv.CS, strict) &&
			axesCompare(av.Axes, bv.Axes, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *CompoundCRS:
		bv := b.(*CompoundCRS)
		if !commonCompare(&av.Common, &bv.Common, strict) {
			return false
		}
		return nodeSliceCompare(av.Components, bv.Components, strict)
	case *BoundCRS:
		bv := b.(*BoundCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Source, bv.Source, strict) &&
			compareNodes(av.Target, bv.Target, strict) &&
			compareNodes(av.Transformation, bv.Transformation, strict)
	case *BaseGeodCRS:
		bv := b.(*BaseGeodCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *BaseProjCRS:
		bv := b.(*BaseProjCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.BaseCRS, bv.BaseCRS, strict) &&
			compareNodes(av.Conversion, bv.Conversion, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *BaseVertCRS:
		bv := b.(*BaseVertCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *BaseEngCRS:
		bv := b.(*BaseEngCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *BaseParamCRS:
		bv := b.(*BaseParamCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *BaseTimeCRS:
		bv := b.(*BaseTimeCRS)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Datum, bv.Datum, strict) &&
			unitCompare(av.Unit, bv.Unit, strict)

	case *GeodeticDatum:
		bv := b.(*GeodeticDatum)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Ellipsoid, bv.Ellipsoid, strict) &&
			compareNodes(av.PrimeMeridian, bv.PrimeMeridian, strict) &&
			(!strict || anchorEqual(av.Anchor, bv.Anchor))
	case *VerticalDatum:
		bv := b.(*VerticalDatum)
		return commonCompare(&av.Common, &bv.Common, strict) && (!strict || anchorEqual(av.Anchor, bv.Anchor))
	case *EngineeringDatum:
		bv := b.(*EngineeringDatum)
		return commonCompare(&av.Common, &bv.Common, strict) && (!strict || anchorEqual(av.Anchor, bv.Anchor))
	case *TemporalDatum:
		bv := b.(*TemporalDatum)
		return commonCompare(&av.Common, &bv.Common, strict) && (!strict || timeOriginEqual(av.Origin, bv.Origin))
	case *ParametricDatum:
		bv := b.(*ParametricDatum)
		return commonCompare(&av.Common, &bv.Common, strict) && (!strict || anchorEqual(av.Anchor, bv.Anchor))
	case *ImageDatum:
		bv := b.(*ImageDatum)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			av.PixelInCell == bv.PixelInCell &&
			(!strict || anchorEqual(av.Anchor, bv.Anchor))

	case *Ellipsoid:
		bv := b.(*Ellipsoid)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			av.SemiMajorAxis == bv.SemiMajorAxis &&
			av.InverseFlattening == bv.InverseFlattening &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *PrimeMeridian:
		bv := b.(*PrimeMeridian)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			av.Longitude == bv.Longitude &&
			unitCompare(av.Unit, bv.Unit, strict)

	case *CoordinateSystem:
		bv := b.(*CoordinateSystem)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			av.Category == bv.Category &&
			av.Dim == bv.Dim &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *Axis:
		bv := b.(*Axis)
		if !commonCompare(&av.Common, &bv.Common, strict) {
			return false
		}
		if av.Abbreviation != bv.Abbreviation || av.Orientation != bv.Orientation {
			return false
		}
		if !orderEqual(av.Order, bv.Order) {
			return false
		}
		if !unitCompare(av.Unit, bv.Unit, strict) {
			return false
		}
		if strict {
			if !meridianEqual(av.Meridian, bv.Meridian) || !bearingEqual(av.Bearing, bv.Bearing) {
				return false
			}
		}
		return true

	case *AngleUnit:
		bv := b.(*AngleUnit)
		return commonCompare(&av.Common, &bv.Common, strict) && av.ConversionFactor == bv.ConversionFactor
	case *LengthUnit:
		bv := b.(*LengthUnit)
		return commonCompare(&av.Common, &bv.Common, strict) && av.ConversionFactor == bv.ConversionFactor
	case *ScaleUnit:
		bv := b.(*ScaleUnit)
		return commonCompare(&av.Common, &bv.Common, strict) && av.ConversionFactor == bv.ConversionFactor
	case *TimeUnit:
		bv := b.(*TimeUnit)
		return commonCompare(&av.Common, &bv.Common, strict) && av.ConversionFactor == bv.ConversionFactor
	case *ParametricUnit:
		bv := b.(*ParametricUnit)
		return commonCompare(&av.Common, &bv.Common, strict) && av.ConversionFactor == bv.ConversionFactor
	case *Unit:
		bv := b.(*Unit)
		return commonCompare(&av.Common, &bv.Common, strict) && av.ConversionFactor == bv.ConversionFactor

	case *Conversion:
		bv := b.(*Conversion)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Method, bv.Method, strict) &&
			parametersCompare(av.Parameters, bv.Parameters, strict) &&
			filesCompare(av.Files, bv.Files, strict)
	case *DerivingConversion:
		bv := b.(*DerivingConversion)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Method, bv.Method, strict) &&
			parametersCompare(av.Parameters, bv.Parameters, strict) &&
			filesCompare(av.Files, bv.Files, strict)
	case *CoordOp:
		bv := b.(*CoordOp)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.SourceCRS, bv.SourceCRS, strict) &&
			compareNodes(av.TargetCRS, bv.TargetCRS, strict) &&
			compareNodes(av.Method, bv.Method, strict) &&
			parametersCompare(av.Parameters, bv.Parameters, strict) &&
			filesCompare(av.Files, bv.Files, strict) &&
			accuracyEqual(av.Accuracy, bv.Accuracy)
	case *AbridgedTransformation:
		bv := b.(*AbridgedTransformation)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			compareNodes(av.Method, bv.Method, strict) &&
			parametersCompare(av.Parameters, bv.Parameters, strict) &&
			filesCompare(av.Files, bv.Files, strict)

	case *Method:
		bv := b.(*Method)
		return commonCompare(&av.Common, &bv.Common, strict)
	case *Parameter:
		bv := b.(*Parameter)
		return commonCompare(&av.Common, &bv.Common, strict) &&
			av.Value == bv.Value &&
			unitCompare(av.Unit, bv.Unit, strict)
	case *ParameterFile:
		bv := b.(*ParameterFile)
		return commonCompare(&av.Common, &bv.Common, strict) && av.FileName == bv.FileName
	case *OperationAccuracy:
		bv := b.(*OperationAccuracy)
		return av.Value == bv.Value

	case *Identifier:
		bv := b.(*Identifier)
		return identifierCompare(av, bv, strict)
	case *Citation:
		bv := b.(*Citation)
		return av.Text == bv.Text
	case *URI:
		bv := b.(*URI)
		return av.Text == bv.Text
	case *Scope:
		bv := b.(*Scope)
		return av.Text == bv.Text
	case *Remark:
		bv := b.(*Remark)
		return av.Text == bv.Text
	case *Anchor:
		bv := b.(*Anchor)
		return av.Text == bv.Text
	case *TimeOrigin:
		bv := b.(*TimeOrigin)
		return av.Text == bv.Text
	case *Bearing:
		bv := b.(*Bearing)
		return av.Value == bv.Value
	case *Meridian:
		bv := b.(*Meridian)
		return av.Longitude == bv.Longitude && unitCompare(av.Unit, bv.Unit, strict)
	case *Order:
		bv := b.(*Order)
		return av.Value == bv.Value
	case *AreaExtent:
		bv := b.(*AreaExtent)
		return !strict || av.Description == bv.Description
	case *BBoxExtent:
		bv := b.(*BBoxExtent)
		return !strict || (av.South == bv.South && av.West == bv.West && av.North == bv.North && av.East == bv.East)
	case *VerticalExtent:
		bv := b.(*VerticalExtent)
		return !strict || (av.Min == bv.Min && av.Max == bv.Max && unitCompare(av.Unit, bv.Unit, strict))
	case *TimeExtent:
		bv := b.(*TimeExtent)
		return !strict || (av.Start == bv.Start && av.End == bv.End)
	}
	return false
}

// commonCompare compares the shared header. In non-strict (IsEqual) mode
// only Name — the identifying field — is compared; scope/extents/ids/remark/
// visibility are presentation metadata and are skipped, per spec.md §8.1.
func commonCompare(a, b *Common, strict bool) bool {
	if a.Name != b.Name {
		return false
	}
	if !strict {
		return true
	}
	if a.Visible != b.Visible {
		return false
	}
	if !scopeEqual(a.Scope, b.Scope) || !remarkEqual(a.Remark, b.Remark) {
		return false
	}
	return extentsIdentical(a.Extents, b.Extents) && idsIdentical(a.IDs, b.IDs)
}

func scopeEqual(a, b *Scope) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Text == b.Text
}

func remarkEqual(a, b *Remark) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Text == b.Text
}

func anchorEqual(a, b *Anchor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Text == b.Text
}

func timeOriginEqual(a, b *TimeOrigin) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Text == b.Text
}

func bearingEqual(a, b *Bearing) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Value == b.Value
}

func meridianEqual(a, b *Meridian) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Longitude == b.Longitude && unitCompare(a.Unit, b.Unit, true)
}

func orderEqual(a, b *Order) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Value == b.Value
}

func accuracyEqual(a, b *OperationAccuracy) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Value == b.Value
}

func identifierCompare(a, b *Identifier, strict bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Authority != b.Authority || a.Code != b.Code || a.Version != b.Version {
		return false
	}
	if !strict {
		return true
	}
	if (a.Citation == nil) != (b.Citation == nil) || (a.Citation != nil && a.Citation.Text != b.Citation.Text) {
		return false
	}
	if (a.URI == nil) != (b.URI == nil) || (a.URI != nil && a.URI.Text != b.URI.Text) {
		return false
	}
	return true
}

// idsIdentical compares the IDs collection in declaration order — spec.md
// §4.6 "Collection comparisons (extents, ids, parameters) are
// order-sensitive."
func idsIdentical(a, b []*Identifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !identifierCompare(a[i], b[i], true) {
			return false
		}
	}
	return true
}

func extentEqual(a, b Extent, strict bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.extentSubtype() != b.extentSubtype() {
		return false
	}
	return compareNodes(a, b, strict)
}

// extentsIdentical compares the Extents collection in declaration order
// (spec.md §4.6); each pair must share a subtype (extentSubtype) and then
// compare equal field by field under the strict comparison.
func extentsIdentical(a, b []Extent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !extentEqual(a[i], b[i], true) {
			return false
		}
	}
	return true
}

func unitCompare(a, b AnyUnit, strict bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return compareNodes(a, b, strict)
}

// axesCompare, parametersCompare, and filesCompare treat their slices as
// ordered — axis order and parameter order are semantically significant
// (spec.md §3.3's axis Order clause notwithstanding: declaration order in
// the token stream is itself part of what a round-trip must preserve).
func axesCompare(a, b []*Axis, strict bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareNodes(a[i], b[i], strict) {
			return false
		}
	}
	return true
}

func parametersCompare(a, b []*Parameter, strict bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareNodes(a[i], b[i], strict) {
			return false
		}
	}
	return true
}

func filesCompare(a, b []*ParameterFile, strict bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareNodes(a[i], b[i], strict) {
			return false
		}
	}
	return true
}

func nodeSliceCompare(a, b []Node, strict bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareNodes(a[i], b[i], strict) {
			return false
		}
	}
	return true
}
