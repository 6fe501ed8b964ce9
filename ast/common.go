// Package ast defines the ~50 domain object kinds of the WKT-2 grammar
// (spec.md §3.2) as a tagged variant: one Go struct per kind, a shared Kind
// enum, keyword tables (registry.go), and per-kind operations dispatched
// by type switches (clone.go, equal.go) in place of virtual dispatch.
// Struct shape follows the
// teacher's ast.Node family (ast.Identifier, ast.IntegerLiteral, ...): many
// small, mostly-independent types rather than one generic blob, because
// that repetition is the actual shape of this grammar (spec.md §2: "~50
// node kinds (≈70% of the code)").
package ast

// Kind tags every node with its grammar production, the Go realization of
// spec.md §9's "tagged variant (sum type)".
type Kind int

const (
	KindUnknown Kind = iota

	// Leaf / value nodes
	KindIdentifier // id / authority
	KindCitation
	KindURI
	KindScope
	KindRemark
	KindAnchor
	KindMeridian
	KindBearing
	KindOrder
	KindTimeOrigin
	KindAreaExtent
	KindBBoxExtent
	KindVerticalExtent
	KindTimeExtent
	KindMethod
	KindParameter
	KindParameterFile
	KindOperationAccuracy

	// Units
	KindAngleUnit
	KindLengthUnit
	KindScaleUnit
	KindTimeUnit
	KindParametricUnit
	KindUnit // generic/unspecified-family unit

	// Coordinate system
	KindCS
	KindAxis

	// Datums
	KindGeodeticDatum
	KindVerticalDatum
	KindEngineeringDatum
	KindTemporalDatum
	KindParametricDatum
	KindImageDatum
	KindEllipsoid
	KindPrimeMeridian

	// CRS flavors
	KindGeodeticCRS
	KindProjectedCRS
	KindVerticalCRS
	KindEngineeringCRS
	KindTemporalCRS
	KindParametricCRS
	KindImageCRS
	KindCompoundCRS
	KindBoundCRS

	// Base CRS (one per flavor that can anchor a derived/projected/bound CRS)
	KindBaseGeodCRS
	KindBaseProjCRS
	KindBaseVertCRS
	KindBaseEngCRS
	KindBaseParamCRS
	KindBaseTimeCRS

	// Conversions and coordinate operations
	KindConversion
	KindDerivingConversion
	KindCoordOp
	KindAbridgedTransformation
)

var kindNames = map[Kind]string{
	KindIdentifier:             "ID",
	KindCitation:               "CITATION",
	KindURI:                    "URI",
	KindScope:                  "SCOPE",
	KindRemark:                 "REMARK",
	KindAnchor:                 "ANCHOR",
	KindMeridian:               "MERIDIAN",
	KindBearing:                "BEARING",
	KindOrder:                  "ORDER",
	KindTimeOrigin:             "TIMEORIGIN",
	KindAreaExtent:             "AREA",
	KindBBoxExtent:             "BBOX",
	KindVerticalExtent:         "VERTICALEXTENT",
	KindTimeExtent:             "TIMEEXTENT",
	KindMethod:                 "METHOD",
	KindParameter:              "PARAMETER",
	KindParameterFile:          "PARAMETERFILE",
	KindOperationAccuracy:      "OPERATIONACCURACY",
	KindAngleUnit:              "ANGLEUNIT",
	KindLengthUnit:             "LENGTHUNIT",
	KindScaleUnit:              "SCALEUNIT",
	KindTimeUnit:               "TIMEUNIT",
	KindParametricUnit:         "PARAMETRICUNIT",
	KindUnit:                   "UNIT",
	KindCS:                     "CS",
	KindAxis:                   "AXIS",
	KindGeodeticDatum:          "DATUM",
	KindVerticalDatum:          "VDATUM",
	KindEngineeringDatum:       "EDATUM",
	KindTemporalDatum:          "TDATUM",
	KindParametricDatum:        "PDATUM",
	KindImageDatum:             "IDATUM",
	KindEllipsoid:              "ELLIPSOID",
	KindPrimeMeridian:          "PRIMEM",
	KindGeodeticCRS:            "GEODCRS",
	KindProjectedCRS:           "PROJCRS",
	KindVerticalCRS:            "VERTCRS",
	KindEngineeringCRS:         "ENGCRS",
	KindTemporalCRS:            "TIMECRS",
	KindParametricCRS:          "PARAMETRICCRS",
	KindImageCRS:               "IMAGECRS",
	KindCompoundCRS:            "COMPOUNDCRS",
	KindBoundCRS:               "BOUNDCRS",
	KindBaseGeodCRS:            "BASEGEODCRS",
	KindBaseProjCRS:            "BASEPROJCRS",
	KindBaseVertCRS:            "BASEVERTCRS",
	KindBaseEngCRS:             "BASEENGCRS",
	KindBaseParamCRS:           "BASEPARAMCRS",
	KindBaseTimeCRS:            "BASETIMECRS",
	KindConversion:             "CONVERSION",
	KindDerivingConversion:     "DERIVINGCONVERSION",
	KindCoordOp:                "COORDINATEOPERATION",
	KindAbridgedTransformation: "ABRIDGEDTRANSFORMATION",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN_KIND"
}

// Node is implemented by every AST node kind.
type Node interface {
	Kind() Kind
}

// Common is the shared header of spec.md §3.2: every substantial node
// (anything with its own name and the right to carry scope/extents/ids/
// remark) embeds it. Purely structural leaf values (Order, Bearing,
// TimeOrigin, Identifier, Citation, URI, Scope, Remark themselves) do not —
// the grammar gives them no nested clauses of their own.
type Common struct {
	Name    string // quoted identifier, <= 254 bytes after unescape (spec.md §3.2)
	Visible bool   // default true; false only via explicit hiding (e.g. NO_IDS-style elision at construction)

	Scope   *Scope
	Extents []Extent
	IDs     []*Identifier
	Remark  *Remark
}

// NodeName returns the node's quoted name.
func (c *Common) NodeName() string { return c.Name }

// IsVisible reports whether the node should be emitted (spec.md §4.5,
// §9 open question: invisible nodes emit the empty string).
func (c *Common) IsVisible() bool { return c.Visible }

// NewCommon returns a Common with the visible-by-default header set.
func NewCommon(name string) Common {
	return Common{Name: name, Visible: true}
}

// Scope is the single textual usage statement common clause, also a node
// kind in its own right (spec.md §3.2 lists "scope" both ways).
type Scope struct{ Text string }

func (s *Scope) Kind() Kind { return KindScope }

// Remark is the single free-text remark common clause / node kind.
type Remark struct{ Text string }

func (r *Remark) Kind() Kind { return KindRemark }

// Citation is the optional bibliographic citation carried by an Identifier.
type Citation struct{ Text string }

func (c *Citation) Kind() Kind { return KindCitation }

// URI is the optional URI carried by an Identifier.
type URI struct{ Text string }

func (u *URI) Kind() Kind { return KindURI }

// Identifier is an authority/code pair naming an object in a registry
// (spec.md §3.2 "id"), e.g. ID["EPSG",4326].
type Identifier struct {
	Authority string
	Code      string
	Version   string
	Citation  *Citation
	URI       *URI
}

func (i *Identifier) Kind() Kind { return KindIdentifier }

// SameAuthorityCode reports whether i and o name the same (authority, code)
// pair — the duplicate-detection predicate for the IDs set (spec.md §3.4).
func (i *Identifier) SameAuthorityCode(o *Identifier) bool {
	if i == nil || o == nil {
		return i == o
	}
	return i.Authority == o.Authority && i.Code == o.Code
}

// Extent is any of the four extent subtypes a node's Extents set may hold.
// Duplicate rejection is keyed on *subtype*, not content (spec.md §3.4,
// §4.4 compare_extent "subtype rather than content is the key").
type Extent interface {
	Node
	extentSubtype() Kind
}

// AreaExtent is a named geographic area of use (e.g. "World").
type AreaExtent struct{ Description string }

func (a *AreaExtent) Kind() Kind          { return KindAreaExtent }
func (a *AreaExtent) extentSubtype() Kind { return KindAreaExtent }

// BBoxExtent is a geographic bounding box (south, west, north, east) in
// degrees.
type BBoxExtent struct {
	South, West, North, East float64
}

func (b *BBoxExtent) Kind() Kind          { return KindBBoxExtent }
func (b *BBoxExtent) extentSubtype() Kind { return KindBBoxExtent }

// VerticalExtent is a vertical range of validity, with an optional unit
// (defaults to metre when nil, per WKT-2).
type VerticalExtent struct {
	Min, Max float64
	Unit     *LengthUnit
}

func (v *VerticalExtent) Kind() Kind          { return KindVerticalExtent }
func (v *VerticalExtent) extentSubtype() Kind { return KindVerticalExtent }

// TimeExtent is a temporal range of validity, given as two textual
// timestamps (WKT-2 permits either a date or a quoted instant).
type TimeExtent struct {
	Start, End string
}

func (t *TimeExtent) Kind() Kind          { return KindTimeExtent }
func (t *TimeExtent) extentSubtype() Kind { return KindTimeExtent }

// Anchor is the single anchor-point description clause of a datum.
type Anchor struct{ Text string }

func (a *Anchor) Kind() Kind { return KindAnchor }

// TimeOrigin is the calendar origin of a temporal datum.
type TimeOrigin struct{ Text string }

func (t *TimeOrigin) Kind() Kind { return KindTimeOrigin }

// Bearing is the azimuth, in the parent unit, of a MERIDIAN axis clause.
type Bearing struct{ Value float64 }

func (b *Bearing) Kind() Kind { return KindBearing }

// Meridian is the longitude-of-meridian clause of an axis not aligned to a
// cardinal direction (e.g. the southing axis of a polar projection).
type Meridian struct {
	Longitude float64
	Unit      *AngleUnit
}

func (m *Meridian) Kind() Kind { return KindMeridian }

// Order is an axis's 1-based position, unique within its CS (spec.md §3.3).
type Order struct{ Value int }

func (o *Order) Kind() Kind { return KindOrder }
