package ast_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/wktcrs/ast"
)

func sampleEllipsoid() *ast.Ellipsoid {
	return &ast.Ellipsoid{
		Common:            ast.Common{Name: "WGS 84", Visible: true, IDs: []*ast.Identifier{{Authority: "EPSG", Code: "7030"}}},
		SemiMajorAxis:     6378137,
		InverseFlattening: 298.257223563,
	}
}

func TestCloneEllipsoidIsDeepCopy(t *testing.T) {
	orig := sampleEllipsoid()
	clone := ast.Clone(orig).(*ast.Ellipsoid)

	if diff := deep.Equal(orig, clone); diff != nil {
		t.Errorf("clone diverged from original: %v", diff)
	}

	// mutating the clone's ID slice must not affect the original.
	clone.IDs[0].Code = "9999"
	assert.Equal(t, "7030", orig.IDs[0].Code, "clone must not share the IDs backing array")

	clone.Name = "changed"
	assert.Equal(t, "WGS 84", orig.Name)
}

func TestCloneNilNode(t *testing.T) {
	var e *ast.Ellipsoid
	out := ast.Clone(e)
	assert.Nil(t, out)
}

func TestCloneAxisWithOptionalFields(t *testing.T) {
	axis := &ast.Axis{
		Common:      ast.Common{Name: "geodetic latitude", Visible: true},
		Abbreviation: "Lat",
		Orientation: "north",
		Order:       &ast.Order{Value: 1},
		Unit:        &ast.AngleUnit{Common: ast.Common{Name: "degree"}, ConversionFactor: 0.0174532925199433},
	}

	clone := ast.Clone(axis).(*ast.Axis)
	require.NotSame(t, axis.Order, clone.Order)
	require.NotSame(t, axis.Unit, clone.Unit)
	assert.Equal(t, axis.Order.Value, clone.Order.Value)
	assert.True(t, ast.IsIdentical(axis, clone))

	clone.Order.Value = 2
	assert.Equal(t, 1, axis.Order.Value, "cloned Order must not alias the original")
}

func TestCloneParameterWithUnit(t *testing.T) {
	p := &ast.Parameter{
		Common: ast.Common{Name: "Latitude of natural origin"},
		Value:  0,
		Unit:   &ast.AngleUnit{Common: ast.Common{Name: "degree"}, ConversionFactor: 0.0174532925199433},
	}
	clone := ast.Clone(p).(*ast.Parameter)
	assert.True(t, ast.IsIdentical(p, clone))

	// Unit must be cloned, not shared, even though it's held via the
	// AnyUnit interface rather than a concrete *AngleUnit field.
	clone.Unit.(*ast.AngleUnit).ConversionFactor = 1
	assert.Equal(t, 0.0174532925199433, p.Unit.(*ast.AngleUnit).ConversionFactor)
}

func TestCloneIdempotentAcrossMultipleGenerations(t *testing.T) {
	orig := sampleEllipsoid()
	g1 := ast.Clone(orig)
	g2 := ast.Clone(g1)
	g3 := ast.Clone(g2)

	assert.True(t, ast.IsIdentical(orig, g3))
	if diff := deep.Equal(orig, g3); diff != nil {
		t.Errorf("three generations of cloning diverged: %v", diff)
	}
}
