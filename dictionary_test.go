package glot

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ruleKinds(rules []rule) []TokenKind {
	kinds := make([]TokenKind, 0, len(rules))
	for _, r := range rules {
		kinds = append(kinds, r.kind)
	}
	return kinds
}

func TestDictionaryCodeRuleOrder(t *testing.T) {
	cfg := &LanguageConfiguration{
		Name:                   "Full",
		SupportsSquareBrackets: true,
		SupportsCurlyBrackets:  true,
		StringRegexp:           regexp.MustCompile(`"[^"]*"`),
		CharacterRegexp:        regexp.MustCompile(`'[^']'`),
		NumberRegexp:           regexp.MustCompile(`[0-9]+`),
		SingleLineComment:      "//",
		NestedComment:          &CommentPair{Open: "/*", Close: "*/"},
		IdentifierRegexp:       regexp.MustCompile(`[a-z]+`),
		OperatorRegexp:         regexp.MustCompile(`[+*]+`),
		ReservedIdentifiers:    []string{"let", "var"},
		ReservedOperators:      []string{"="},
	}
	d := NewTokenDictionary(cfg)

	assert.Equal(t, []TokenKind{
		RoundBracketOpen, RoundBracketClose,
		SquareBracketOpen, SquareBracketClose,
		CurlyBracketOpen, CurlyBracketClose,
		String, Character, Number,
		SingleLineComment,
		NestedCommentOpen, NestedCommentClose,
		Keyword, Keyword, Symbol,
		Identifier, Operator,
	}, ruleKinds(d.code))

	assert.Equal(t, []TokenKind{NestedCommentOpen, NestedCommentClose}, ruleKinds(d.comment))
}

func TestDictionaryGatesOptionalRules(t *testing.T) {
	cfg := &LanguageConfiguration{Name: "Sparse"}
	d := NewTokenDictionary(cfg)

	assert.Equal(t, []TokenKind{RoundBracketOpen, RoundBracketClose}, ruleKinds(d.code))
	assert.Empty(t, d.comment)
}

func TestDictionaryCommentTransitions(t *testing.T) {
	cfg := &LanguageConfiguration{
		Name:          "C",
		NestedComment: &CommentPair{Open: "/*", Close: "*/"},
	}
	d := NewTokenDictionary(cfg)

	assert.Equal(t, transitionOpenComment, d.comment[0].transition)
	assert.Equal(t, transitionCloseComment, d.comment[1].transition)
	// Every non-comment rule preserves the state.
	for _, r := range d.code {
		if r.kind != NestedCommentOpen && r.kind != NestedCommentClose {
			assert.Equal(t, transitionNone, r.transition, "%s", r.kind)
		}
	}
}

func TestReservedRuleWordBounded(t *testing.T) {
	r := reservedRule("let", Keyword)

	assert.Nil(t, r.pattern.FindStringIndex("letter"))
	assert.Nil(t, r.pattern.FindStringIndex("outlet"))
	assert.Equal(t, []int{0, 3}, r.pattern.FindStringIndex("let"))
	assert.Equal(t, []int{1, 4}, r.pattern.FindStringIndex(" let "))
}

func TestRulesSelectedByStateTag(t *testing.T) {
	cfg := &LanguageConfiguration{
		Name:          "C",
		NestedComment: &CommentPair{Open: "/*", Close: "*/"},
	}
	d := NewTokenDictionary(cfg)

	assert.Len(t, d.rules(Code), 4)
	assert.Len(t, d.rules(CommentState(1)), 2)
	assert.Len(t, d.rules(CommentState(5)), 2, "depth never selects rules, only the tag does")
}
