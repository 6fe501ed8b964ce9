package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/wktcrs/ast"
	"github.com/ha1tch/wktcrs/lexer"
	"github.com/ha1tch/wktcrs/parser"
	"github.com/ha1tch/wktcrs/wkterr"
)

const geodeticBase = `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`

func TestVerticalCRS(t *testing.T) {
	input := `VERTCRS["EGM2008",VDATUM["EGM2008 geoid"],CS[vertical,1],AXIS["gravity-related height",up],LENGTHUNIT["m",1]]`
	node, err := parser.FromWKT(input, "VERTCRS", parser.Config{})
	require.NoError(t, err)

	vcrs, ok := node.(*ast.VerticalCRS)
	require.True(t, ok)
	assert.Equal(t, "EGM2008", vcrs.Name)
	require.NotNil(t, vcrs.Datum)
	assert.Equal(t, "EGM2008 geoid", vcrs.Datum.Name)
	require.Len(t, vcrs.Axes, 1)
	assert.Equal(t, "up", vcrs.Axes[0].Orientation)
}

func TestCompoundCRS(t *testing.T) {
	input := `COMPOUNDCRS["WGS 84 + EGM2008",` + geodeticBase + `,VERTCRS["EGM2008",VDATUM["EGM2008 geoid"],CS[vertical,1],AXIS["gravity-related height",up],LENGTHUNIT["m",1]]]`
	node, err := parser.FromWKT(input, "COMPOUNDCRS", parser.Config{})
	require.NoError(t, err)

	ccrs, ok := node.(*ast.CompoundCRS)
	require.True(t, ok)
	require.Len(t, ccrs.Components, 2)
	_, isGeodetic := ccrs.Components[0].(*ast.GeodeticCRS)
	_, isVertical := ccrs.Components[1].(*ast.VerticalCRS)
	assert.True(t, isGeodetic)
	assert.True(t, isVertical)
}

func TestCompoundCRSRequiresTwoComponents(t *testing.T) {
	input := `COMPOUNDCRS["broken",` + geodeticBase + `]`
	_, err := parser.FromWKT(input, "COMPOUNDCRS", parser.Config{})
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.InsufficientTokens, werr.Kind)
}

func TestBoundCRS(t *testing.T) {
	input := `BOUNDCRS[` + geodeticBase + `,` + geodeticBase + `,ABRIDGEDTRANSFORMATION["ts",METHOD["Geocentric translations"],PARAMETER["X-axis translation",84.87]]]`
	node, err := parser.FromWKT(input, "BOUNDCRS", parser.Config{})
	require.NoError(t, err)

	bcrs, ok := node.(*ast.BoundCRS)
	require.True(t, ok)
	assert.NotNil(t, bcrs.Source)
	assert.NotNil(t, bcrs.Target)
	require.NotNil(t, bcrs.Transformation)
	assert.Equal(t, "ts", bcrs.Transformation.Name)
	require.Len(t, bcrs.Transformation.Parameters, 1)
}

func TestBaseGeodCRS(t *testing.T) {
	input := `BASEGEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]]]`
	node, err := parser.FromWKT(input, "BASEGEODCRS", parser.Config{})
	require.NoError(t, err)

	b, ok := node.(*ast.BaseGeodCRS)
	require.True(t, ok)
	assert.Equal(t, "WGS 84", b.Name)
	require.NotNil(t, b.Datum)
}

func TestProjectedCRSWithFullConversion(t *testing.T) {
	input := `PROJCRS["UTM zone 32N",BASEGEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]]],CONVERSION["UTM zone 32N",METHOD["Transverse Mercator"],PARAMETER["Latitude of natural origin",0],PARAMETER["Longitude of natural origin",9],PARAMETER["Scale factor at natural origin",0.9996],PARAMETER["False easting",500000],PARAMETER["False northing",0]],CS[Cartesian,2],AXIS["easting",east],AXIS["northing",north],LENGTHUNIT["m",1]]`
	node, err := parser.FromWKT(input, "PROJCRS", parser.Config{})
	require.NoError(t, err)

	p, ok := node.(*ast.ProjectedCRS)
	require.True(t, ok)
	require.NotNil(t, p.Conversion)
	assert.Equal(t, "Transverse Mercator", p.Conversion.Method.Name)
	assert.Len(t, p.Conversion.Parameters, 5)
	assert.Equal(t, ast.CSCartesian, p.CS.Category)
}

func TestCoordOp(t *testing.T) {
	input := `COORDINATEOPERATION["transform",` + geodeticBase + `,` + geodeticBase + `,METHOD["Geocentric translations"],PARAMETER["X-axis translation",84.87],OPERATIONACCURACY[1.0]]`
	node, err := parser.FromWKT(input, "COORDINATEOPERATION", parser.Config{})
	require.NoError(t, err)

	op, ok := node.(*ast.CoordOp)
	require.True(t, ok)
	assert.NotNil(t, op.SourceCRS)
	assert.NotNil(t, op.TargetCRS)
	require.NotNil(t, op.Accuracy)
	assert.Equal(t, 1.0, op.Accuracy.Value)
}

func TestDuplicateParameterRejected(t *testing.T) {
	input := `CONVERSION["conv",METHOD["m"],PARAMETER["Scale factor",1],PARAMETER["Scale factor",2]]`
	_, err := parser.FromWKT(input, "CONVERSION", parser.Config{})
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.DuplicateChild, werr.Kind)
	assert.Equal(t, "PARAMETER", werr.Child)
}

func TestMissingMethodRejected(t *testing.T) {
	input := `CONVERSION["conv",PARAMETER["Scale factor",1]]`
	_, err := parser.FromWKT(input, "CONVERSION", parser.Config{})
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.MissingRequired, werr.Kind)
	assert.Equal(t, "METHOD", werr.Child)
}

func TestDuplicateMethodRejected(t *testing.T) {
	input := `CONVERSION["conv",METHOD["a"],METHOD["b"],PARAMETER["Scale factor",1]]`
	node, err := parser.FromWKT(input, "CONVERSION", parser.Config{})
	require.Error(t, err)
	require.Nil(t, node)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.DuplicateChild, werr.Kind)
	assert.Equal(t, "METHOD", werr.Child)
}

func TestDuplicateEllipsoidRejected(t *testing.T) {
	input := `DATUM["d",ELLIPSOID["e1",6378137,298.257223563],ELLIPSOID["e2",6378137,298.257223563]]`
	node, err := parser.FromWKT(input, "DATUM", parser.Config{})
	require.Error(t, err)
	require.Nil(t, node)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.DuplicateChild, werr.Kind)
	assert.Equal(t, "ELLIPSOID", werr.Child)
}

func TestDuplicateDatumRejected(t *testing.T) {
	input := `GEODCRS["x",DATUM["d1",ELLIPSOID["e",6378137,298.257223563]],DATUM["d2",ELLIPSOID["e",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`
	node, err := parser.FromWKT(input, "GEODCRS", parser.Config{})
	require.Error(t, err)
	require.Nil(t, node)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.DuplicateChild, werr.Kind)
	assert.Equal(t, "DATUM", werr.Child)
}

func TestDuplicateBaseGeodCRSAndConversionRejected(t *testing.T) {
	base := `BASEGEODCRS["WGS 84",DATUM["d",ELLIPSOID["e",6378137,298.257223563]]]`
	conv := `CONVERSION["c",METHOD["Transverse Mercator"],PARAMETER["p",1]]`
	input := `PROJCRS["x",` + base + `,` + base + `,` + conv + `,` + conv + `,CS[Cartesian,2],AXIS["easting",east],AXIS["northing",north],LENGTHUNIT["m",1]]`
	node, err := parser.FromWKT(input, "PROJCRS", parser.Config{})
	require.Error(t, err)
	require.Nil(t, node)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.DuplicateChild, werr.Kind)
	assert.Equal(t, "BASEGEODCRS", werr.Child)
}

// FromTokens itself — not just the FromWKT convenience wrapper — must never
// hand back a non-nil node alongside an error (spec.md §7: "the caller
// likewise aborts... returns null").
func TestFromTokensNilsNodeOnValidatorError(t *testing.T) {
	input := `GEODCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]],CS[ellipsoidal,3],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`
	ts, err := lexer.Tokenize(input, "GEODCRS")
	require.NoError(t, err)

	node, _, err := parser.FromTokens(ts, 0, parser.Config{})
	require.Error(t, err)
	require.Nil(t, node)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.AxisCountMismatch, werr.Kind)
}

func TestAxisOrientationNotPermitted(t *testing.T) {
	input := `GEODCRS["x",DATUM["d",ELLIPSOID["e",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",up],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`
	_, err := parser.FromWKT(input, "GEODCRS", parser.Config{})
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.InvalidKeyword, werr.Kind)
}

func TestDuplicateAxisOrderRejected(t *testing.T) {
	input := `GEODCRS["x",DATUM["d",ELLIPSOID["e",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north,ORDER[1]],AXIS["lon",east,ORDER[1]],ANGLEUNIT["deg",0.0174532925199433]]`
	_, err := parser.FromWKT(input, "GEODCRS", parser.Config{})
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.AxisDuplicateOrder, werr.Kind)
}

func TestNameTooLongRejected(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	input := `GEODCRS["` + string(long) + `",DATUM["d",ELLIPSOID["e",1,2]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGLEUNIT["deg",0.0174532925199433]]`
	_, err := parser.FromWKT(input, "GEODCRS", parser.Config{})
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.NameTooLong, werr.Kind)
}

func TestAlternateKeywordSpellingsAccepted(t *testing.T) {
	input := `GEOGCS["WGS 84",DATUM["d",SPHEROID["e",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east],ANGULARUNIT["deg",0.0174532925199433]]`
	node, err := parser.FromWKT(input, "GEOGCS", parser.Config{})
	require.NoError(t, err)
	_, ok := node.(*ast.GeodeticCRS)
	assert.True(t, ok)
}

func TestConfigPerCallStrictOverride(t *testing.T) {
	input := geodeticBase + " GARBAGE"

	lenient, err := parser.FromWKT(input, "GEODCRS", parser.Config{})
	require.NoError(t, err)
	require.NotNil(t, lenient)

	strictCfg := parser.Config{}.WithStrict(true)
	_, err = parser.FromWKT(input, "GEODCRS", strictCfg)
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.TooManyTokens, werr.Kind)
}

func TestProcessWideStrictParsingDefault(t *testing.T) {
	defer parser.SetStrictParsing(false)

	parser.SetStrictParsing(true)
	assert.True(t, parser.StrictParsing())

	parser.SetStrictParsing(false)
	assert.False(t, parser.StrictParsing())
}
