package glot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allKinds = []TokenKind{
	RoundBracketOpen, RoundBracketClose,
	SquareBracketOpen, SquareBracketClose,
	CurlyBracketOpen, CurlyBracketClose,
	String, Character, Number,
	SingleLineComment, NestedCommentOpen, NestedCommentClose,
	Identifier, Operator, Keyword, Symbol, Regexp,
}

func TestMatchingBracketInvolutive(t *testing.T) {
	for _, k := range allKinds {
		partner, ok := k.MatchingBracket()
		if !ok {
			assert.False(t, k.IsOpenBracket(), "%s has no partner but opens", k)
			assert.False(t, k.IsCloseBracket(), "%s has no partner but closes", k)
			continue
		}
		back, ok := partner.MatchingBracket()
		assert.True(t, ok, "%s's partner %s has no partner", k, partner)
		assert.Equal(t, k, back, "matching %s twice must come back to it", k)
		assert.NotEqual(t, k.IsOpenBracket(), partner.IsOpenBracket())
	}
}

func TestBracketPredicates(t *testing.T) {
	opens := []TokenKind{RoundBracketOpen, SquareBracketOpen, CurlyBracketOpen, NestedCommentOpen}
	closes := []TokenKind{RoundBracketClose, SquareBracketClose, CurlyBracketClose, NestedCommentClose}
	for _, k := range opens {
		assert.True(t, k.IsOpenBracket(), "%s", k)
		assert.False(t, k.IsCloseBracket(), "%s", k)
	}
	for _, k := range closes {
		assert.True(t, k.IsCloseBracket(), "%s", k)
		assert.False(t, k.IsOpenBracket(), "%s", k)
	}
	assert.False(t, Identifier.IsOpenBracket())
	assert.False(t, String.IsCloseBracket())
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, SingleLineComment.IsComment())
	assert.True(t, NestedCommentOpen.IsComment())
	assert.True(t, NestedCommentClose.IsComment())
	assert.False(t, String.IsComment())

	assert.True(t, Identifier.IsIdentifier())
	assert.False(t, Keyword.IsIdentifier())

	assert.True(t, Operator.IsOperator())
	assert.False(t, Symbol.IsOperator())
}

func TestFlavourIsType(t *testing.T) {
	assert.True(t, FlavourType.IsType())
	for _, f := range []Flavour{
		FlavourNone, FlavourModule, FlavourParameter, FlavourTypeParameter,
		FlavourVariable, FlavourProperty, FlavourEnumCase, FlavourFunction,
		FlavourMethod, FlavourMacro, FlavourModifier,
	} {
		assert.False(t, f.IsType(), "%s", f)
	}
}
