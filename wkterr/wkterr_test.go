package wkterr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/wktcrs/wkterr"
)

func TestReporterKeepsOnlyFirst(t *testing.T) {
	var rep wkterr.Reporter
	assert.False(t, rep.HasError())
	assert.Nil(t, rep.First())

	first := wkterr.New(wkterr.AxisCountMismatch, "first")
	second := wkterr.New(wkterr.NameTooLong, "second")

	rep.Report(first)
	rep.Report(second)

	require.True(t, rep.HasError())
	assert.Same(t, first, rep.First())
	assert.Equal(t, []*wkterr.Error{first, second}, rep.All())
}

func TestReporterIgnoresNil(t *testing.T) {
	var rep wkterr.Reporter
	rep.Report(nil)
	assert.False(t, rep.HasError())
	assert.Empty(t, rep.All())
}

func TestDuplicateChildError(t *testing.T) {
	err := wkterr.DuplicateChildError("ID", "EPSG:4326")
	assert.Equal(t, wkterr.DuplicateChild, err.Kind)
	assert.Equal(t, "ID", err.Child)
	assert.Contains(t, err.Error(), "EPSG:4326")
	assert.Contains(t, err.Error(), "ID")
}

func TestDuplicateChildErrorNoDetail(t *testing.T) {
	err := wkterr.DuplicateChildError("SCOPE", "")
	assert.Equal(t, "duplicate SCOPE", err.Msg)
}

func TestMissingRequiredError(t *testing.T) {
	err := wkterr.MissingRequiredError("CONVERSION")
	assert.Equal(t, wkterr.MissingRequired, err.Kind)
	assert.Equal(t, "CONVERSION", err.Child)
	assert.Contains(t, err.Error(), "CONVERSION")
}

func TestErrorIncludesPositionWhenSet(t *testing.T) {
	err := wkterr.New(wkterr.InvalidKeyword, "bad thing %q", "X")
	err.Line, err.Col = 3, 7
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "col 7")

	noPos := wkterr.New(wkterr.InvalidKeyword, "bad thing")
	assert.NotContains(t, noPos.Error(), "line")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := wkterr.New(wkterr.BadQuote, "inner failure")
	wrapped := wkterr.Wrap(cause, wkterr.InvalidKeyword, "outer context")

	assert.Equal(t, wkterr.InvalidKeyword, wrapped.Kind)
	assert.True(t, errors.Is(wrapped, cause), "wrapped error's chain must still reach cause")
}

func TestKindStringNames(t *testing.T) {
	assert.Equal(t, "WKT_EMPTY_STRING", wkterr.EmptyString.String())
	assert.Equal(t, "AXIS_COUNT_MISMATCH", wkterr.AxisCountMismatch.String())
	assert.Equal(t, "UNKNOWN_ERROR_KIND", wkterr.Kind(9999).String())
}
