package ast

// GeodeticDatum anchors a geodetic CRS: an ellipsoid, an optional prime
// meridian (defaults to Greenwich when nil), and an optional anchor
// description.
type GeodeticDatum struct {
	Common
	Ellipsoid     *Ellipsoid
	PrimeMeridian *PrimeMeridian
	Anchor        *Anchor
}

func (d *GeodeticDatum) Kind() Kind { return KindGeodeticDatum }

// VerticalDatum anchors a vertical CRS.
type VerticalDatum struct {
	Common
	Anchor *Anchor
}

func (d *VerticalDatum) Kind() Kind { return KindVerticalDatum }

// EngineeringDatum anchors an engineering CRS to a local origin.
type EngineeringDatum struct {
	Common
	Anchor *Anchor
}

func (d *EngineeringDatum) Kind() Kind { return KindEngineeringDatum }

// TemporalDatum anchors a temporal CRS, either to a calendar TimeOrigin or
// (per the WKT-2:2019 temporal-count extension) with no explicit origin —
// see SPEC_FULL.md §5, grounded on original_source/src/ogc_temporal_crs.cpp.
type TemporalDatum struct {
	Common
	Origin *TimeOrigin
}

func (d *TemporalDatum) Kind() Kind { return KindTemporalDatum }

// ParametricDatum anchors a parametric CRS.
type ParametricDatum struct {
	Common
	Anchor *Anchor
}

func (d *ParametricDatum) Kind() Kind { return KindParametricDatum }

// ImageDatum anchors an image CRS, with a pixel-in-cell convention.
type ImageDatum struct {
	Common
	Anchor     *Anchor
	PixelInCell string // e.g. "cell center", "cell corner"
}

func (d *ImageDatum) Kind() Kind { return KindImageDatum }
