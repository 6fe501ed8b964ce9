package ast

// GeodeticCRS is a geodetic (geographic or geocentric) CRS: a datum, a
// coordinate system, and the system's axes (spec.md §3.3's CS/axis/unit
// coupling is enforced by the validator, not by this struct).
type GeodeticCRS struct {
	Common
	Datum *GeodeticDatum
	CS    *CoordinateSystem
	Axes  []*Axis
	Unit  *AngleUnit
}

func (c *GeodeticCRS) Kind() Kind { return KindGeodeticCRS }

// ProjectedCRS is a CRS derived from a base geodetic CRS by a map
// projection (Conversion).
type ProjectedCRS struct {
	Common
	BaseCRS    *BaseGeodCRS
	Conversion *Conversion
	CS         *CoordinateSystem
	Axes       []*Axis
	Unit       *LengthUnit
}

func (c *ProjectedCRS) Kind() Kind { return KindProjectedCRS }

// VerticalCRS is a one-dimensional CRS for height or depth.
type VerticalCRS struct {
	Common
	Datum *VerticalDatum
	CS    *CoordinateSystem
	Axes  []*Axis
	Unit  *LengthUnit
}

func (c *VerticalCRS) Kind() Kind { return KindVerticalCRS }

// EngineeringCRS is a CRS local to an engineering project (e.g. a
// construction site or a vehicle body frame).
type EngineeringCRS struct {
	Common
	Datum *EngineeringDatum
	CS    *CoordinateSystem
	Axes  []*Axis
	Unit  *LengthUnit
}

func (c *EngineeringCRS) Kind() Kind { return KindEngineeringCRS }

// TemporalCRS is a one-dimensional CRS for time.
type TemporalCRS struct {
	Common
	Datum *TemporalDatum
	CS    *CoordinateSystem
	Axes  []*Axis
	Unit  *TimeUnit
}

func (c *TemporalCRS) Kind() Kind { return KindTemporalCRS }

// ParametricCRS is a one-dimensional CRS for a non-spatial parameter (e.g.
// pressure as a vertical proxy).
type ParametricCRS struct {
	Common
	Datum *ParametricDatum
	CS    *CoordinateSystem
	Axes  []*Axis
	Unit  *ParametricUnit
}

func (c *ParametricCRS) Kind() Kind { return KindParametricCRS }

// ImageCRS is a CRS for raster/image pixel coordinates.
type ImageCRS struct {
	Common
	Datum *ImageDatum
	CS    *CoordinateSystem
	Axes  []*Axis
	Unit  *LengthUnit
}

func (c *ImageCRS) Kind() Kind { return KindImageCRS }

// CompoundCRS combines two or more single CRSs (typically horizontal +
// vertical) into one.
type CompoundCRS struct {
	Common
	Components []Node // each a *GeodeticCRS, *ProjectedCRS, *VerticalCRS, *EngineeringCRS, *TemporalCRS, or *ParametricCRS
}

func (c *CompoundCRS) Kind() Kind { return KindCompoundCRS }

// BoundCRS relates a source CRS to a target CRS via an abridged coordinate
// transformation (e.g. binding a local datum to WGS 84).
type BoundCRS struct {
	Common
	Source         Node // the bound (source) CRS
	Target         Node // the target CRS
	Transformation *AbridgedTransformation
}

func (c *BoundCRS) Kind() Kind { return KindBoundCRS }

// BaseGeodCRS is the base geodetic CRS a ProjectedCRS (or a BoundCRS's
// source) is derived from. Base CRS nodes carry only name, datum, and unit —
// never their own CS/axes/extents — per ISO 19162.
type BaseGeodCRS struct {
	Common
	Datum *GeodeticDatum
	Unit  *AngleUnit
}

func (c *BaseGeodCRS) Kind() Kind { return KindBaseGeodCRS }

// BaseProjCRS is a projected CRS used as the base of a further derivation
// (rare, but legal per ISO 19162 for derived projected CRSs).
type BaseProjCRS struct {
	Common
	BaseCRS    *BaseGeodCRS
	Conversion *Conversion
	Unit       *LengthUnit
}

func (c *BaseProjCRS) Kind() Kind { return KindBaseProjCRS }

// BaseVertCRS is a vertical CRS used as the base of a derived vertical CRS.
type BaseVertCRS struct {
	Common
	Datum *VerticalDatum
	Unit  *LengthUnit
}

func (c *BaseVertCRS) Kind() Kind { return KindBaseVertCRS }

// BaseEngCRS is an engineering CRS used as the base of a derived engineering CRS.
type BaseEngCRS struct {
	Common
	Datum *EngineeringDatum
	Unit  *LengthUnit
}

func (c *BaseEngCRS) Kind() Kind { return KindBaseEngCRS }

// BaseParamCRS is a parametric CRS used as the base of a derived parametric CRS.
type BaseParamCRS struct {
	Common
	Datum *ParametricDatum
	Unit  *ParametricUnit
}

func (c *BaseParamCRS) Kind() Kind { return KindBaseParamCRS }

// BaseTimeCRS is a temporal CRS used as the base of a derived temporal CRS.
type BaseTimeCRS struct {
	Common
	Datum *TemporalDatum
	Unit  *TimeUnit
}

func (c *BaseTimeCRS) Kind() Kind { return KindBaseTimeCRS }
