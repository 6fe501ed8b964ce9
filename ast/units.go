package ast

// Each unit keyword (ANGLEUNIT, LENGTHUNIT, SCALEUNIT, TIMEUNIT,
// PARAMETRICUNIT, and the bare UNIT fallback) gets its own struct even
// though the shape is identical: unit *kind* must match the CRS family, and
// keeping them as distinct Go types lets the validator (parser/validate.go)
// and registry dispatch on Go type the same way the grammar dispatches on
// keyword, instead of carrying a redundant "family" tag that could disagree
// with the struct's own registration.

// AngleUnit is an angular unit of measure (e.g. ANGLEUNIT["degree",0.0174532925199433]).
type AngleUnit struct {
	Common
	ConversionFactor float64 // to radians
}

func (u *AngleUnit) Kind() Kind { return KindAngleUnit }

// LengthUnit is a linear unit of measure (e.g. LENGTHUNIT["metre",1]).
type LengthUnit struct {
	Common
	ConversionFactor float64 // to metres
}

func (u *LengthUnit) Kind() Kind { return KindLengthUnit }

// ScaleUnit is a scale (ratio) unit, used by conversion parameters such as
// scale factors.
type ScaleUnit struct {
	Common
	ConversionFactor float64 // to unity
}

func (u *ScaleUnit) Kind() Kind { return KindScaleUnit }

// TimeUnit is a temporal unit of measure (also spelled TEMPORALQUANTITY).
type TimeUnit struct {
	Common
	ConversionFactor float64 // to seconds
}

func (u *TimeUnit) Kind() Kind { return KindTimeUnit }

// ParametricUnit is the unit of measure of a parametric CRS's single axis.
type ParametricUnit struct {
	Common
	ConversionFactor float64
}

func (u *ParametricUnit) Kind() Kind { return KindParametricUnit }

// Unit is the generic/unspecified-family UNIT[...] fallback form.
type Unit struct {
	Common
	ConversionFactor float64
}

func (u *Unit) Kind() Kind { return KindUnit }

// AnyUnit is implemented by every unit kind; the validator uses it to check
// per-axis unit overrides against the CRS-level unit regardless of which
// concrete Go type either side is.
type AnyUnit interface {
	Node
	UnitName() string
	UnitFactor() float64
}

func (u *AngleUnit) UnitName() string      { return u.Name }
func (u *AngleUnit) UnitFactor() float64   { return u.ConversionFactor }
func (u *LengthUnit) UnitName() string     { return u.Name }
func (u *LengthUnit) UnitFactor() float64  { return u.ConversionFactor }
func (u *ScaleUnit) UnitName() string      { return u.Name }
func (u *ScaleUnit) UnitFactor() float64   { return u.ConversionFactor }
func (u *TimeUnit) UnitName() string       { return u.Name }
func (u *TimeUnit) UnitFactor() float64    { return u.ConversionFactor }
func (u *ParametricUnit) UnitName() string { return u.Name }
func (u *ParametricUnit) UnitFactor() float64 {
	return u.ConversionFactor
}
func (u *Unit) UnitName() string    { return u.Name }
func (u *Unit) UnitFactor() float64 { return u.ConversionFactor }
