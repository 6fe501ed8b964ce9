package ast

// Ellipsoid is the reference ellipsoid of a geodetic datum: semi-major axis
// and either inverse flattening or (for a sphere) 0.
type Ellipsoid struct {
	Common
	SemiMajorAxis    float64
	InverseFlattening float64
	Unit             *LengthUnit // defaults to metre when nil
}

func (e *Ellipsoid) Kind() Kind { return KindEllipsoid }

// PrimeMeridian is the datum's prime meridian, given as a longitude from
// Greenwich.
type PrimeMeridian struct {
	Common
	Longitude float64
	Unit      *AngleUnit // defaults to the enclosing CRS's angle unit when nil
}

func (p *PrimeMeridian) Kind() Kind { return KindPrimeMeridian }

// Method is the named operation method of a Conversion or CoordOp (e.g.
// "Transverse Mercator").
type Method struct {
	Common
}

func (m *Method) Kind() Kind { return KindMethod }

// Parameter is a single named, valued, unit-bearing operation parameter.
type Parameter struct {
	Common
	Value float64
	Unit  AnyUnit // typically ScaleUnit, LengthUnit, or AngleUnit depending on the parameter
}

func (p *Parameter) Kind() Kind { return KindParameter }

// SameName reports whether p and o name the same parameter — the
// duplicate-detection predicate (compare_parameter, spec.md §4.4) for the
// Parameters set.
func (p *Parameter) SameName(o *Parameter) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Name == o.Name
}

// ParameterFile is a file-valued operation parameter (e.g. a grid-shift
// file name) instead of a numeric one.
type ParameterFile struct {
	Common
	FileName string
}

func (p *ParameterFile) Kind() Kind { return KindParameterFile }

// SameName is the duplicate-detection predicate (compare_param_file) for
// the ParameterFiles set.
func (p *ParameterFile) SameName(o *ParameterFile) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Name == o.Name
}

// OperationAccuracy is the estimated accuracy of a coordinate operation, in
// the units the grammar fixes (metres).
type OperationAccuracy struct {
	Value float64
}

func (o *OperationAccuracy) Kind() Kind { return KindOperationAccuracy }
