package ast

// Conversion is a parameterized coordinate operation with no associated
// accuracy — the kind a ProjectedCRS carries to relate itself to its base
// geodetic CRS.
type Conversion struct {
	Common
	Method     *Method
	Parameters []*Parameter
	Files      []*ParameterFile
}

func (c *Conversion) Kind() Kind { return KindConversion }

// DerivingConversion is the conversion that relates a derived CRS (of any
// non-projected flavor: vertical, engineering, parametric, temporal) to its
// base CRS — structurally identical to Conversion but a distinct grammar
// production (DERIVINGCONVERSION vs CONVERSION).
type DerivingConversion struct {
	Common
	Method     *Method
	Parameters []*Parameter
	Files      []*ParameterFile
}

func (c *DerivingConversion) Kind() Kind { return KindDerivingConversion }

// CoordOp is a full coordinate operation (e.g. a datum transformation)
// between two independently named CRSs, carrying an estimated accuracy.
type CoordOp struct {
	Common
	SourceCRS  Node
	TargetCRS  Node
	Method     *Method
	Parameters []*Parameter
	Files      []*ParameterFile
	Accuracy   *OperationAccuracy
}

func (c *CoordOp) Kind() Kind { return KindCoordOp }

// AbridgedTransformation is the transformation nested inside a BoundCRS —
// like CoordOp but without its own source/target CRS (those are supplied
// by the enclosing BoundCRS), grounded on
// original_source/src/ogc_abrtrans.cpp.
type AbridgedTransformation struct {
	Common
	Method     *Method
	Parameters []*Parameter
	Files      []*ParameterFile
}

func (a *AbridgedTransformation) Kind() Kind { return KindAbridgedTransformation }
