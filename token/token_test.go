package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/wktcrs/token"
)

func TestAtOutOfRangeReturnsEOF(t *testing.T) {
	var s token.Stream
	assert.Equal(t, token.EOF, s.At(-1).Type)
	assert.Equal(t, token.EOF, s.At(0).Type)
	assert.Equal(t, token.EOF, s.At(100).Type)
}

func TestEndOutOfRangeReturnsLength(t *testing.T) {
	s := token.Stream{Entries: []token.Entry{
		{Type: token.KEYWORD, Str: "GEODCRS", Level: 0},
	}}
	assert.Equal(t, s.Len(), s.End(-1))
	assert.Equal(t, s.Len(), s.End(5))
}

func TestEndFindsFirstSiblingOrEnclosingClose(t *testing.T) {
	// GEODCRS [ DATUM [ d ] CS [ ellipsoidal 2 ] ]
	//    L0   L1  L1  L2 L2 L2 L1 L2    L2    L2 L2 L1
	s := token.Stream{Entries: []token.Entry{
		{Type: token.KEYWORD, Str: "GEODCRS", Level: 0, Idx: 0}, // 0
		{Type: token.LBRACKET, Str: "[", Level: 1, Idx: 0},      // 1
		{Type: token.KEYWORD, Str: "DATUM", Level: 1, Idx: 0},   // 2
		{Type: token.LBRACKET, Str: "[", Level: 2, Idx: 0},      // 3
		{Type: token.STRING, Str: "d", Level: 2, Idx: 0},        // 4
		{Type: token.RBRACKET, Str: "]", Level: 2, Idx: 1},      // 5
		{Type: token.KEYWORD, Str: "CS", Level: 1, Idx: 1},      // 6
		{Type: token.LBRACKET, Str: "[", Level: 2, Idx: 0},      // 7
		{Type: token.KEYWORD, Str: "ellipsoidal", Level: 2, Idx: 0}, // 8
		{Type: token.NUMBER, Str: "2", Level: 2, Idx: 1},        // 9
		{Type: token.RBRACKET, Str: "]", Level: 2, Idx: 2},      // 10
		{Type: token.RBRACKET, Str: "]", Level: 1, Idx: 2},      // 11
	}}

	assert.Equal(t, s.Len(), s.End(0), "root object's subtree runs to the end of the stream")
	assert.Equal(t, 6, s.End(2), "DATUM's subtree ends just before its next sibling CS")
}

func TestTypeStringNames(t *testing.T) {
	assert.Equal(t, "KEYWORD", token.KEYWORD.String())
	assert.Equal(t, "[", token.LBRACKET.String())
	assert.Equal(t, "(", token.LPAREN.String())
}

func TestIsOpenIsClose(t *testing.T) {
	assert.True(t, token.LBRACKET.IsOpen())
	assert.True(t, token.LPAREN.IsOpen())
	assert.False(t, token.RBRACKET.IsOpen())

	assert.True(t, token.RBRACKET.IsClose())
	assert.True(t, token.RPAREN.IsClose())
	assert.False(t, token.LBRACKET.IsClose())
}
