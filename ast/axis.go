package ast

import "github.com/ha1tch/wktcrs/internal/strutil"

// CSCategory is a coordinate-system category (spec.md §3.3).
type CSCategory int

const (
	CSUnknown CSCategory = iota
	CSCartesian
	CSEllipsoidal
	CSSpherical
	CSVertical
	CSTemporal
	CSParametric
	CSOrdinal
	CSAffine
)

var csCategoryNames = map[CSCategory]string{
	CSCartesian:   "Cartesian",
	CSEllipsoidal: "ellipsoidal",
	CSSpherical:   "spherical",
	CSVertical:    "vertical",
	CSTemporal:    "temporal",
	CSParametric:  "parametric",
	CSOrdinal:     "ordinal",
	CSAffine:      "affine",
}

func (c CSCategory) String() string {
	if s, ok := csCategoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// LookupCSCategory resolves a WKT CS category token, case-insensitively.
func LookupCSCategory(s string) (CSCategory, bool) {
	for k, v := range csCategoryNames {
		if strutil.EqualFold(v, s) {
			return k, true
		}
	}
	return CSUnknown, false
}

// permittedOrientations lists the axis orientations allowed per CS category
// (spec.md §3.3 "each axis must belong to the category's permitted axis
// set"). Orientation comparison is case-insensitive.
var permittedOrientations = map[CSCategory][]string{
	CSCartesian:   {"east", "west", "north", "south", "up", "down", "geocentricX", "geocentricY", "geocentricZ"},
	CSEllipsoidal: {"north", "south", "east", "west"},
	CSSpherical:   {"north", "south", "east", "west", "up", "down"},
	CSVertical:    {"up", "down"},
	CSTemporal:    {"future", "past"},
	CSParametric:  {"up", "down", "unspecified"},
	CSOrdinal:     {"unspecified"},
	CSAffine:      {"east", "north", "south", "west", "unspecified"},
}

// PermittedOrientations returns the axis orientations legal for cat.
func PermittedOrientations(cat CSCategory) []string {
	return permittedOrientations[cat]
}

// IsOrientationPermitted reports whether orientation is legal for cat.
// Meridian-qualified orientations ("south along 90 deg East" style axes)
// are not in this table; the validator accepts any orientation on an axis
// that carries a Meridian clause, whatever the category (spec.md §3.3/§4.4).
func IsOrientationPermitted(cat CSCategory, orientation string) bool {
	for _, o := range permittedOrientations[cat] {
		if strutil.EqualFold(o, orientation) {
			return true
		}
	}
	return false
}

// CoordinateSystem is the "cs" node: a category plus a declared dimension
// (spec.md §3.3). The containing CRS must supply exactly Dim axes, each
// belonging to Category's permitted set.
type CoordinateSystem struct {
	Common
	Category CSCategory
	Dim      int
	Unit     AnyUnit // optional CS-level default unit, inherited by axes that don't override it
}

func (c *CoordinateSystem) Kind() Kind { return KindCS }

// Axis is a named, oriented coordinate component (spec.md glossary). Order,
// when present, must be unique within the enclosing CS (spec.md §3.3).
type Axis struct {
	Common
	Abbreviation string
	Orientation  string
	Order        *Order
	Unit         AnyUnit   // overrides the CS/CRS unit when set
	Meridian     *Meridian // only for axes whose orientation needs a bearing reference
	Bearing      *Bearing
}

func (a *Axis) Kind() Kind { return KindAxis }
