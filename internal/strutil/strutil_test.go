package strutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/wktcrs/internal/strutil"
)

func TestEqualFold(t *testing.T) {
	assert.True(t, strutil.EqualFold("GEODCRS", "geodcrs"))
	assert.True(t, strutil.EqualFold("BaseGeodCRS", "BASEGEODCRS"))
	assert.False(t, strutil.EqualFold("GEODCRS", "PROJCRS"))
	assert.False(t, strutil.EqualFold("GEODCRS", "GEODCR"))
}

func TestToUpperASCII(t *testing.T) {
	assert.Equal(t, "GEODCRS", strutil.ToUpperASCII("geodcrs"))
	assert.Equal(t, "GEODCRS", strutil.ToUpperASCII("GeodCRS"))
	// non-ASCII bytes are left untouched, even though the rune they're
	// part of isn't itself upper-cased.
	assert.Equal(t, "CAFé", strutil.ToUpperASCII("café"))
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	raw := `say "hello" please`
	escaped := strutil.Escape(raw)
	assert.Equal(t, `say ""hello"" please`, escaped)
	assert.Equal(t, raw, strutil.Unescape(escaped))
}

func TestEscapeUnescapeNoQuotes(t *testing.T) {
	assert.Equal(t, "WGS 84", strutil.Escape("WGS 84"))
	assert.Equal(t, "WGS 84", strutil.Unescape("WGS 84"))
}

func TestRuneLenVsByteLen(t *testing.T) {
	s := "café"
	assert.Equal(t, 4, strutil.RuneLen(s))
	assert.Equal(t, 5, strutil.ByteLen(s)) // é is 2 bytes in UTF-8
}

func TestByteLenAtBound(t *testing.T) {
	s := strings.Repeat("a", 255)
	assert.Equal(t, 255, strutil.ByteLen(s))
}
