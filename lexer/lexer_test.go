package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/wktcrs/lexer"
	"github.com/ha1tch/wktcrs/token"
	"github.com/ha1tch/wktcrs/wkterr"
)

func TestTokenizeBasicShape(t *testing.T) {
	ts, err := lexer.Tokenize(`GEODCRS["WGS 84",ID["EPSG",4326]]`, "GEODCRS")
	require.NoError(t, err)

	require.True(t, ts.Len() > 0)
	first := ts.At(0)
	assert.Equal(t, token.KEYWORD, first.Type)
	assert.Equal(t, "GEODCRS", first.Str)
	assert.Equal(t, 0, first.Level)
	assert.Equal(t, 0, first.Idx)
}

func TestParenAndBracketAreInterchangeable(t *testing.T) {
	withBrackets, err := lexer.Tokenize(`GEODCRS["x",DATUM["d",ELLIPSOID["e",1,2]]]`, "GEODCRS")
	require.NoError(t, err)
	withParens, err := lexer.Tokenize(`GEODCRS("x",DATUM("d",ELLIPSOID("e",1,2)))`, "GEODCRS")
	require.NoError(t, err)

	require.Equal(t, withBrackets.Len(), withParens.Len())
	for i := 0; i < withBrackets.Len(); i++ {
		a, b := withBrackets.At(i), withParens.At(i)
		assert.Equal(t, a.Str, b.Str)
		assert.Equal(t, a.Level, b.Level)
		assert.Equal(t, a.Idx, b.Idx)
		// LBRACKET/RBRACKET are the shared token.Type regardless of [ or ( spelling.
		assert.Equal(t, a.Type, b.Type)
	}
}

func TestCommasAreConsumedSilently(t *testing.T) {
	ts, err := lexer.Tokenize(`AXIS["lat",,,north]`, "AXIS")
	require.NoError(t, err)
	for _, e := range ts.Entries {
		assert.NotEqual(t, token.COMMA, e.Type)
	}
}

func TestLevelAndIdxAssignment(t *testing.T) {
	ts, err := lexer.Tokenize(`CS[ellipsoidal,2]`, "CS")
	require.NoError(t, err)

	// CS [ ellipsoidal , 2 ]
	kw := ts.At(0)
	assert.Equal(t, 0, kw.Level)
	assert.Equal(t, 0, kw.Idx)

	var sawCategory, sawDim bool
	for _, e := range ts.Entries {
		if e.Type == token.KEYWORD && e.Str == "ellipsoidal" {
			assert.Equal(t, 1, e.Level)
			assert.Equal(t, 0, e.Idx)
			sawCategory = true
		}
		if e.Type == token.NUMBER && e.Str == "2" {
			assert.Equal(t, 1, e.Level)
			assert.Equal(t, 1, e.Idx)
			sawDim = true
		}
	}
	assert.True(t, sawCategory)
	assert.True(t, sawDim)
}

func TestStreamEndFindsSubtreeBoundary(t *testing.T) {
	ts, err := lexer.Tokenize(`GEODCRS["x",DATUM["d",ELLIPSOID["e",1,2]],CS[ellipsoidal,2]]`, "GEODCRS")
	require.NoError(t, err)

	end := ts.End(0)
	assert.Equal(t, ts.Len(), end, "the root object's subtree runs to the end of the stream")

	// Find the DATUM keyword's own index and check its End lands just
	// before CS, its next sibling.
	var datumIdx, csIdx int = -1, -1
	for i, e := range ts.Entries {
		if e.Type == token.KEYWORD && e.Str == "DATUM" {
			datumIdx = i
		}
		if e.Type == token.KEYWORD && e.Str == "CS" {
			csIdx = i
		}
	}
	require.NotEqual(t, -1, datumIdx)
	require.NotEqual(t, -1, csIdx)
	assert.Equal(t, csIdx, ts.End(datumIdx))
}

func TestQuotedNameEscaping(t *testing.T) {
	ts, err := lexer.Tokenize(`SCOPE["say ""hello"" please"]`, "SCOPE")
	require.NoError(t, err)

	var found bool
	for _, e := range ts.Entries {
		if e.Type == token.STRING {
			assert.Equal(t, `say "hello" please`, e.Str)
			found = true
		}
	}
	assert.True(t, found)
}

func TestEmptyStringRejected(t *testing.T) {
	_, err := lexer.Tokenize("   ", "GEODCRS")
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.EmptyString, werr.Kind)
}

func TestUnbalancedBracketsRejected(t *testing.T) {
	_, err := lexer.Tokenize(`GEODCRS["x",DATUM["d"]`, "GEODCRS")
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.UnbalancedBrackets, werr.Kind)
}

func TestUnmatchedClosingBracketRejected(t *testing.T) {
	_, err := lexer.Tokenize(`GEODCRS["x"]]`, "GEODCRS")
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.UnbalancedBrackets, werr.Kind)
}

func TestUnterminatedStringRejected(t *testing.T) {
	_, err := lexer.Tokenize(`GEODCRS["x]`, "GEODCRS")
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.BadQuote, werr.Kind)
}

func TestStrayCharacterRejected(t *testing.T) {
	_, err := lexer.Tokenize(`GEODCRS["x",#]`, "GEODCRS")
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.IndexOutOfRange, werr.Kind)
}

func TestSignedNumberWithoutDigitsRejected(t *testing.T) {
	_, err := lexer.Tokenize(`PARAMETER["x",+]`, "PARAMETER")
	require.Error(t, err)
	werr, ok := err.(*wkterr.Error)
	require.True(t, ok)
	assert.Equal(t, wkterr.IndexOutOfRange, werr.Kind)
}

func TestNegativeAndExponentNumbers(t *testing.T) {
	ts, err := lexer.Tokenize(`PARAMETER["x",-1.5e-10]`, "PARAMETER")
	require.NoError(t, err)

	var found bool
	for _, e := range ts.Entries {
		if e.Type == token.NUMBER {
			assert.Equal(t, "-1.5e-10", e.Str)
			found = true
		}
	}
	assert.True(t, found)
}
