package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/wktcrs/ast"
)

func TestLookupKeywordIsCaseInsensitive(t *testing.T) {
	k1, ok1 := ast.LookupKeyword("GEODCRS")
	k2, ok2 := ast.LookupKeyword("geodcrs")
	k3, ok3 := ast.LookupKeyword("GeodCrs")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.True(t, ok3)
	assert.Equal(t, ast.KindGeodeticCRS, k1)
	assert.Equal(t, k1, k2)
	assert.Equal(t, k1, k3)
}

func TestLookupKeywordAlternates(t *testing.T) {
	for _, kw := range []string{"GEODCRS", "GEODETICCRS", "GEOGCRS", "GEOGRAPHICCRS"} {
		k, ok := ast.LookupKeyword(kw)
		assert.True(t, ok, kw)
		assert.Equal(t, ast.KindGeodeticCRS, k, kw)
	}
	for _, kw := range []string{"ID", "AUTHORITY"} {
		k, ok := ast.LookupKeyword(kw)
		assert.True(t, ok, kw)
		assert.Equal(t, ast.KindIdentifier, k, kw)
	}
	for _, kw := range []string{"LENGTHUNIT", "LENUNIT"} {
		k, ok := ast.LookupKeyword(kw)
		assert.True(t, ok, kw)
		assert.Equal(t, ast.KindLengthUnit, k, kw)
	}
}

func TestLookupKeywordUnknown(t *testing.T) {
	_, ok := ast.LookupKeyword("FOOBAR")
	assert.False(t, ok)
}

func TestCanonicalKeywordRoundTrip(t *testing.T) {
	kinds := []ast.Kind{
		ast.KindGeodeticCRS, ast.KindProjectedCRS, ast.KindVerticalCRS,
		ast.KindEllipsoid, ast.KindPrimeMeridian, ast.KindCS, ast.KindAxis,
		ast.KindIdentifier, ast.KindAngleUnit, ast.KindLengthUnit,
	}
	for _, k := range kinds {
		canon := ast.CanonicalKeyword(k)
		assert.NotEmpty(t, canon, k.String())
		resolved, ok := ast.LookupKeyword(canon)
		assert.True(t, ok, canon)
		assert.Equal(t, k, resolved, canon)
	}
}

func TestKindStringNamesEveryRegisteredKind(t *testing.T) {
	// Every kind that appears as a keywordTable value must stringify to
	// something other than the unknown placeholder.
	seen := map[ast.Kind]bool{}
	for _, kw := range []string{
		"GEODCRS", "PROJCRS", "VERTCRS", "ENGCRS", "TIMECRS", "PARAMETRICCRS",
		"IMAGECRS", "COMPOUNDCRS", "BOUNDCRS", "BASEGEODCRS", "BASEPROJCRS",
		"BASEVERTCRS", "BASEENGCRS", "BASEPARAMCRS", "BASETIMECRS", "DATUM",
		"VDATUM", "EDATUM", "TDATUM", "PDATUM", "IDATUM", "ELLIPSOID",
		"PRIMEM", "CS", "AXIS", "ORDER", "MERIDIAN", "BEARING", "ANGLEUNIT",
		"LENGTHUNIT", "SCALEUNIT", "TIMEUNIT", "PARAMETRICUNIT", "UNIT",
		"ID", "CITATION", "URI", "SCOPE", "REMARK", "ANCHOR", "AREA", "BBOX",
		"VERTICALEXTENT", "TIMEEXTENT", "TIMEORIGIN", "CONVERSION",
		"DERIVINGCONVERSION", "COORDINATEOPERATION", "ABRIDGEDTRANSFORMATION",
		"OPERATIONACCURACY", "METHOD", "PARAMETER", "PARAMETERFILE",
	} {
		k, ok := ast.LookupKeyword(kw)
		assert.True(t, ok, kw)
		if seen[k] {
			continue
		}
		seen[k] = true
		assert.NotEqual(t, "UNKNOWN_KIND", k.String(), kw)
	}
}
