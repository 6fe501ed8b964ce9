package wktcrs_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/wktcrs"
	"github.com/ha1tch/wktcrs/ast"
	"github.com/ha1tch/wktcrs/wkterr"
)

const minimalGeodetic = `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`

// 1. Minimal geodetic CRS
func TestMinimalGeodeticCRS(t *testing.T) {
	node, err := wktcrs.FromWKT(minimalGeodetic, "GEODCRS")
	require.NoError(t, err)

	crs, ok := node.(*ast.GeodeticCRS)
	require.True(t, ok, "expected *ast.GeodeticCRS, got %T", node)
	assert.Equal(t, 2, crs.CS.Dim)
	assert.Len(t, crs.Axes, 2)

	out, err := wktcrs.ToWKT(node, 0)
	require.NoError(t, err)
	reparsed, err := wktcrs.FromWKT(out, "GEODCRS")
	require.NoError(t, err)
	assert.True(t, wktcrs.IsIdentical(node, reparsed))
}

// 2. Axis-count mismatch
func TestAxisCountMismatch(t *testing.T) {
	input := `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,3],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`
	node, err := wktcrs.FromWKT(input, "GEODCRS")
	require.Error(t, err)
	assert.Nil(t, node)

	werr, ok := err.(*wkterr.Error)
	require.True(t, ok, "expected *wkterr.Error, got %T", err)
	assert.Equal(t, wkterr.AxisCountMismatch, werr.Kind)
}

// 3. Duplicate ID rejection
func TestDuplicateIDRejection(t *testing.T) {
	input := `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433],ID["EPSG",4326],ID["EPSG",4326]]`
	node, err := wktcrs.FromWKT(input, "GEODCRS")
	require.Error(t, err)
	assert.Nil(t, node)

	werr, ok := err.(*wkterr.Error)
	require.True(t, ok, "expected *wkterr.Error, got %T", err)
	assert.Equal(t, wkterr.DuplicateChild, werr.Kind)
	assert.Equal(t, "ID", werr.Child)
	assert.Contains(t, werr.Error(), "EPSG")
}

// 4. Bracket style round-trip
func TestBracketStyleRoundTrip(t *testing.T) {
	node, err := wktcrs.FromWKT(minimalGeodetic, "GEODCRS")
	require.NoError(t, err)

	out, err := wktcrs.ToWKT(node, wktcrs.PARENS)
	require.NoError(t, err)
	assert.Contains(t, out, "(")
	assert.NotContains(t, out, "[")

	reparsed, err := wktcrs.FromWKT(out, "GEODCRS")
	require.NoError(t, err)
	if diff := deep.Equal(node, reparsed); diff != nil {
		t.Errorf("round-trip through PARENS diverged: %v", diff)
	}
	assert.True(t, wktcrs.IsIdentical(node, reparsed))
}

// 5. NO_IDS emission
func TestNoIDsEmission(t *testing.T) {
	input := `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433],ID["EPSG",4326],ID["EPSG",4327]]`
	node, err := wktcrs.FromWKT(input, "GEODCRS")
	require.NoError(t, err)
	crs := node.(*ast.GeodeticCRS)
	require.Len(t, crs.IDs, 2)

	out, err := wktcrs.ToWKT(node, wktcrs.NoIDs)
	require.NoError(t, err)

	reparsed, err := wktcrs.FromWKT(out, "GEODCRS")
	require.NoError(t, err)
	reCRS := reparsed.(*ast.GeodeticCRS)
	assert.Len(t, reCRS.IDs, 0)

	assert.True(t, wktcrs.IsEqual(node, reparsed))
	assert.False(t, wktcrs.IsIdentical(node, reparsed))
}

// 6. Unknown child ignored
func TestUnknownChildIgnored(t *testing.T) {
	input := `PROJCRS["x",FOOBAR["anything",1,2],BASEGEODCRS["base",DATUM["d",ELLIPSOID["e",6378137,298.257223563]]],CONVERSION["conv",METHOD["Transverse Mercator"]],CS[Cartesian,2],AXIS["x",east],AXIS["y",north],LENGTHUNIT["m",1]]`
	node, err := wktcrs.FromWKT(input, "PROJCRS")
	require.NoError(t, err)

	out, err := wktcrs.ToWKT(node, 0)
	require.NoError(t, err)
	assert.NotContains(t, out, "FOOBAR")
}

// Strictness switch (spec.md §8.1)
func TestStrictnessSwitchTrailingGarbage(t *testing.T) {
	input := minimalGeodetic + ` GARBAGE`

	node, err := wktcrs.FromWKT(input, "GEODCRS")
	require.NoError(t, err, "lenient mode tolerates a trailing token")
	require.NotNil(t, node)

	cfg := wktcrs.Config{}.WithStrict(true)
	_, err = wktcrs.FromWKTWithConfig(input, "GEODCRS", cfg)
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.TooManyTokens, werr.Kind)
}

// Strictness switch over an excess *leading* token at a single node (spec.md
// §4.2 step 4), as distinct from trailing garbage after the whole document:
// ELLIPSOID takes exactly two leading numbers (semi-major axis, inverse
// flattening); a third is surplus.
func TestStrictnessSwitchExcessLeadingToken(t *testing.T) {
	input := `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563,999]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`

	node, err := wktcrs.FromWKT(input, "GEODCRS")
	require.NoError(t, err, "lenient mode tolerates a surplus leading token")
	require.NotNil(t, node)

	cfg := wktcrs.Config{}.WithStrict(true)
	strictNode, err := wktcrs.FromWKTWithConfig(input, "GEODCRS", cfg)
	require.Error(t, err)
	require.Nil(t, strictNode)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.TooManyTokens, werr.Kind)
}

// Clone idempotence (spec.md §8.1)
func TestCloneIdempotence(t *testing.T) {
	node, err := wktcrs.FromWKT(minimalGeodetic, "GEODCRS")
	require.NoError(t, err)

	clone := wktcrs.Clone(node)
	assert.True(t, wktcrs.IsIdentical(clone, node))

	clone2 := wktcrs.Clone(clone)
	assert.True(t, wktcrs.IsIdentical(clone2, node))
}

// Equality reflexivity/symmetry and refinement (spec.md §8.1)
func TestEqualityProperties(t *testing.T) {
	a, err := wktcrs.FromWKT(minimalGeodetic, "GEODCRS")
	require.NoError(t, err)
	b, err := wktcrs.FromWKT(minimalGeodetic, "GEODCRS")
	require.NoError(t, err)

	assert.True(t, wktcrs.IsEqual(a, a))
	assert.True(t, wktcrs.IsIdentical(a, a))
	assert.Equal(t, wktcrs.IsEqual(a, b), wktcrs.IsEqual(b, a))
	assert.Equal(t, wktcrs.IsIdentical(a, b), wktcrs.IsIdentical(b, a))

	if wktcrs.IsIdentical(a, b) {
		assert.True(t, wktcrs.IsEqual(a, b), "is_identical must imply is_equal")
	}
}

func TestVisibilityEmitsEmptyString(t *testing.T) {
	node, err := wktcrs.FromWKT(minimalGeodetic, "GEODCRS")
	require.NoError(t, err)
	crs := node.(*ast.GeodeticCRS)
	crs.Visible = false

	out, err := wktcrs.ToWKT(crs, 0)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestWriteWKTBufferOverflow(t *testing.T) {
	node, err := wktcrs.FromWKT(minimalGeodetic, "GEODCRS")
	require.NoError(t, err)

	buf := wktcrs.NewBuffer(4)
	ok := wktcrs.WriteWKT(buf, node, 0)
	assert.False(t, ok)
	assert.True(t, buf.Overflowed())
}
