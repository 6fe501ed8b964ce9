package ast

// Clone returns a deep copy of n, the Go realization of spec.md §8.1's
// clone idempotence invariant (IsIdentical(n, Clone(n)) always holds, and
// mutating the clone never affects n). Clone(nil) returns nil.
func Clone(n Node) Node {
	if isNilNode(n) {
		return nil
	}
	switch v := n.(type) {
	case *GeodeticCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.CS = cloneTyped(v.CS)
		c.Axes = cloneAxes(v.Axes)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *ProjectedCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.BaseCRS = cloneTyped(v.BaseCRS)
		c.Conversion = cloneTyped(v.Conversion)
		c.CS = cloneTyped(v.CS)
		c.Axes = cloneAxes(v.Axes)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *VerticalCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.CS = cloneTyped(v.CS)
		c.Axes = cloneAxes(v.Axes)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *EngineeringCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.CS = cloneTyped(v.CS)
		c.Axes = cloneAxes(v.Axes)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *TemporalCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.CS = cloneTyped(v.CS)
		c.Axes = cloneAxes(v.Axes)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *ParametricCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.CS = cloneTyped(v.CS)
		c.Axes = cloneAxes(v.Axes)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *ImageCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.CS = cloneTyped(v.CS)
		c.Axes = cloneAxes(v.Axes)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *CompoundCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		if v.Components != nil {
			c.Components = make([]Node, len(v.Components))
			for i, comp := range v.Components {
				c.Components[i] = Clone(comp)
			}
		}
		return &c
	case *BoundCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Source = Clone(v.Source)
		c.Target = Clone(v.Target)
		c.Transformation = cloneTyped(v.Transformation)
		return &c
	case *BaseGeodCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *BaseProjCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.BaseCRS = cloneTyped(v.BaseCRS)
		c.Conversion = cloneTyped(v.Conversion)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *BaseVertCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *BaseEngCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *BaseParamCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.Unit = cloneUnitT(v.Unit)
		return &c
	case *BaseTimeCRS:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Datum = cloneTyped(v.Datum)
		c.Unit = cloneUnitT(v.Unit)
		return &c

	case *GeodeticDatum:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Ellipsoid = cloneTyped(v.Ellipsoid)
		c.PrimeMeridian = cloneTyped(v.PrimeMeridian)
		c.Anchor = cloneAnchor(v.Anchor)
		return &c
	case *VerticalDatum:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Anchor = cloneAnchor(v.Anchor)
		return &c
	case *EngineeringDatum:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Anchor = cloneAnchor(v.Anchor)
		return &c
	case *TemporalDatum:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Origin = cloneTimeOrigin(v.Origin)
		return &c
	case *ParametricDatum:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Anchor = cloneAnchor(v.Anchor)
		return &c
	case *ImageDatum:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Anchor = cloneAnchor(v.Anchor)
		return &c

	case *Ellipsoid:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Unit = cloneTyped(v.Unit)
		return &c
	case *PrimeMeridian:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Unit = cloneTyped(v.Unit)
		return &c

	case *CoordinateSystem:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Unit = cloneUnit(v.Unit)
		return &c
	case *Axis:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Order = cloneOrder(v.Order)
		c.Unit = cloneUnit(v.Unit)
		c.Meridian = cloneMeridian(v.Meridian)
		c.Bearing = cloneBearing(v.Bearing)
		return &c

	case *AngleUnit:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c
	case *LengthUnit:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c
	case *ScaleUnit:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c
	case *TimeUnit:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c
	case *ParametricUnit:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c
	case *Unit:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c

	case *Conversion:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Method = cloneTyped(v.Method)
		c.Parameters = cloneParameters(v.Parameters)
		c.Files = cloneFiles(v.Files)
		return &c
	case *DerivingConversion:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Method = cloneTyped(v.Method)
		c.Parameters = cloneParameters(v.Parameters)
		c.Files = cloneFiles(v.Files)
		return &c
	case *CoordOp:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.SourceCRS = Clone(v.SourceCRS)
		c.TargetCRS = Clone(v.TargetCRS)
		c.Method = cloneTyped(v.Method)
		c.Parameters = cloneParameters(v.Parameters)
		c.Files = cloneFiles(v.Files)
		if v.Accuracy != nil {
			acc := *v.Accuracy
			c.Accuracy = &acc
		}
		return &c
	case *AbridgedTransformation:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Method = cloneTyped(v.Method)
		c.Parameters = cloneParameters(v.Parameters)
		c.Files = cloneFiles(v.Files)
		return &c

	case *Method:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c
	case *Parameter:
		c := *v
		c.Common = cloneCommon(v.Common)
		c.Unit = cloneUnit(v.Unit)
		return &c
	case *ParameterFile:
		c := *v
		c.Common = cloneCommon(v.Common)
		return &c
	case *OperationAccuracy:
		c := *v
		return &c

	case *Identifier:
		return cloneIdentifier(v)
	case *Citation:
		c := *v
		return &c
	case *URI:
		c := *v
		return &c
	case *Scope:
		c := *v
		return &c
	case *Remark:
		c := *v
		return &c
	case *Anchor:
		c := *v
		return &c
	case *TimeOrigin:
		c := *v
		return &c
	case *Bearing:
		c := *v
		return &c
	case *Meridian:
		return cloneMeridian(v)
	case *Order:
		c := *v
		return &c
	case *AreaExtent:
		c := *v
		return &c
	case *BBoxExtent:
		c := *v
		return &c
	case *VerticalExtent:
		c := *v
		c.Unit = cloneTyped(v.Unit)
		return &c
	case *TimeExtent:
		c := *v
		return &c
	}
	return nil
}

// cloneTyped clones a concrete-typed node pointer and re-asserts the result
// back to T, so callers keep their struct's declared field type instead of
// the Node interface Clone returns.
func cloneTyped[T Node](v T) T {
	if isNilNode(v) {
		var zero T
		return zero
	}
	cloned := Clone(v)
	typed, _ := cloned.(T)
	return typed
}

func cloneCommon(c Common) Common {
	out := c
	out.Scope = cloneScope(c.Scope)
	out.Remark = cloneRemark(c.Remark)
	if c.Extents != nil {
		out.Extents = make([]Extent, len(c.Extents))
		for i, e := range c.Extents {
			out.Extents[i] = cloneExtent(e)
		}
	}
	if c.IDs != nil {
		out.IDs = make([]*Identifier, len(c.IDs))
		for i, id := range c.IDs {
			out.IDs[i] = cloneIdentifier(id)
		}
	}
	return out
}

func cloneScope(s *Scope) *Scope {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneRemark(r *Remark) *Remark {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func cloneAnchor(a *Anchor) *Anchor {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneTimeOrigin(t *TimeOrigin) *TimeOrigin {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneBearing(b *Bearing) *Bearing {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func cloneOrder(o *Order) *Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func cloneMeridian(m *Meridian) *Meridian {
	if m == nil {
		return nil
	}
	c := *m
	c.Unit = cloneTyped(m.Unit)
	return &c
}

func cloneIdentifier(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}
	c := *id
	if id.Citation != nil {
		cc := *id.Citation
		c.Citation = &cc
	}
	if id.URI != nil {
		cu := *id.URI
		c.URI = &cu
	}
	return &c
}

func cloneExtent(e Extent) Extent {
	if e == nil {
		return nil
	}
	cloned := Clone(e)
	typed, _ := cloned.(Extent)
	return typed
}

// cloneUnit clones an AnyUnit-typed field (CS/axis/parameter unit overrides,
// which may hold any of the six unit kinds).
func cloneUnit(u AnyUnit) AnyUnit {
	if isNilNode(u) {
		return nil
	}
	cloned := Clone(u)
	typed, _ := cloned.(AnyUnit)
	return typed
}

// cloneUnitT clones a CRS-level unit field whose declared Go type is one
// specific unit kind (e.g. ProjectedCRS.Unit is *LengthUnit).
func cloneUnitT[T AnyUnit](u T) T {
	if isNilNode(u) {
		var zero T
		return zero
	}
	cloned := Clone(u)
	typed, _ := cloned.(T)
	return typed
}

func cloneAxes(axes []*Axis) []*Axis {
	if axes == nil {
		return nil
	}
	out := make([]*Axis, len(axes))
	for i, a := range axes {
		out[i] = cloneTyped(a)
	}
	return out
}

func cloneParameters(params []*Parameter) []*Parameter {
	if params == nil {
		return nil
	}
	out := make([]*Parameter, len(params))
	for i, p := range params {
		out[i] = cloneTyped(p)
	}
	return out
}

func cloneFiles(files []*ParameterFile) []*ParameterFile {
	if files == nil {
		return nil
	}
	out := make([]*ParameterFile, len(files))
	for i, f := range files {
		out[i] = cloneTyped(f)
	}
	return out
}
