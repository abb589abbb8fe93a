package glot

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLanguage is a small language with nested comments, one reserved
// word and an alphanumeric identifier grammar.
func testLanguage() *LanguageConfiguration {
	return &LanguageConfiguration{
		Name:                "T",
		NestedComment:       &CommentPair{Open: "/*", Close: "*/"},
		IdentifierRegexp:    regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9]*`),
		ReservedIdentifiers: []string{"let"},
	}
}

func kindsOf(toks []Token) []TokenKind {
	kinds := make([]TokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestNestedCommentDepth(t *testing.T) {
	toks, final := Tokenise(testLanguage(), "/* a /* b */ c */", Code)

	require.Equal(t, []TokenKind{
		NestedCommentOpen, NestedCommentOpen,
		NestedCommentClose, NestedCommentClose,
	}, kindsOf(toks))
	assert.Equal(t, []int{1, 2, 1, 0}, []int{
		toks[0].State.CommentDepth,
		toks[1].State.CommentDepth,
		toks[2].State.CommentDepth,
		toks[3].State.CommentDepth,
	})
	assert.Equal(t, Code, final)

	// The identifier rule must not fire on the text between delimiters:
	// inside a comment only the delimiters themselves match.
	assert.Equal(t, 0, toks[0].Start)
	assert.Equal(t, 2, toks[0].End)
	assert.Equal(t, 5, toks[1].Start)
	assert.Equal(t, 10, toks[2].Start)
	assert.Equal(t, 15, toks[3].Start)
}

func TestStrayCommentCloseStaysInCode(t *testing.T) {
	toks, final := Tokenise(testLanguage(), "a */ b", Code)

	require.Equal(t, []TokenKind{Identifier, NestedCommentClose, Identifier}, kindsOf(toks))
	assert.Equal(t, Code, toks[1].State, "no negative depth, the floor saturates")
	assert.Equal(t, Code, final)
}

func TestReservedWordPrecedence(t *testing.T) {
	toks, _ := Tokenise(testLanguage(), "letter", Code)
	require.Len(t, toks, 1)
	assert.Equal(t, Identifier, toks[0].Kind, "a reserved word must not fire inside a longer identifier")
	assert.Equal(t, 0, toks[0].Start)
	assert.Equal(t, 6, toks[0].End)

	toks, _ = Tokenise(testLanguage(), "let letter", Code)
	require.Equal(t, []TokenKind{Keyword, Identifier}, kindsOf(toks))
	assert.Equal(t, 3, toks[0].End)
}

func TestBracketSupportGating(t *testing.T) {
	cfg := &LanguageConfiguration{
		Name:             "NoSquare",
		IdentifierRegexp: regexp.MustCompile(`[a-z]+`),
	}
	toks, _ := Tokenise(cfg, "[x]", Code)

	require.Equal(t, []TokenKind{Identifier}, kindsOf(toks))
	assert.Equal(t, 1, toks[0].Start)
	assert.Equal(t, 2, toks[0].End)
}

func TestUntokenisedTextSkipped(t *testing.T) {
	cfg := &LanguageConfiguration{
		Name:          "CommentsOnly",
		NestedComment: &CommentPair{Open: "/*", Close: "*/"},
	}
	toks, final := Tokenise(cfg, "x /* y */ z", Code)

	assert.Equal(t, []TokenKind{NestedCommentOpen, NestedCommentClose}, kindsOf(toks))
	assert.Equal(t, Code, final)
}

func TestRestartability(t *testing.T) {
	first := "let a /* one /*"
	second := " two */ three */ (b)"
	whole := first + second

	wholeToks, wholeFinal := Tokenise(testLanguage(), whole, Code)

	firstToks, mid := Tokenise(testLanguage(), first, Code)
	secondToks, secondFinal := Tokenise(testLanguage(), second, mid)

	assert.Equal(t, State{CommentDepth: 2}, mid)
	assert.Equal(t, wholeFinal, secondFinal)

	var joined []Token
	joined = append(joined, firstToks...)
	for _, tok := range secondToks {
		tok.Start += len(first)
		tok.End += len(first)
		joined = append(joined, tok)
	}
	assert.Equal(t, wholeToks, joined)
}

func TestScannerReportsFinalState(t *testing.T) {
	sc := NewScanner(NewTokenDictionary(testLanguage()), "a /* b", Code)
	for {
		if _, ok := sc.Next(); !ok {
			break
		}
	}
	assert.Equal(t, State{CommentDepth: 1}, sc.State())
}

func TestCallerSuppliedStartState(t *testing.T) {
	// Resuming inside a depth-two comment: the first close only brings
	// the depth down to one, so the trailing word stays untokenised.
	toks, final := Tokenise(testLanguage(), "a */ b", CommentState(2))

	require.Equal(t, []TokenKind{NestedCommentClose}, kindsOf(toks))
	assert.Equal(t, State{CommentDepth: 1}, final)
}

func TestZeroWidthMatchMakesProgress(t *testing.T) {
	cfg := &LanguageConfiguration{
		Name:             "Degenerate",
		IdentifierRegexp: regexp.MustCompile(`x*`),
	}
	toks, final := Tokenise(cfg, "axbxx", Code)

	require.Equal(t, []TokenKind{Identifier, Identifier}, kindsOf(toks))
	assert.Equal(t, 1, toks[0].Start)
	assert.Equal(t, 2, toks[0].End)
	assert.Equal(t, 3, toks[1].Start)
	assert.Equal(t, 5, toks[1].End)
	assert.Equal(t, Code, final)
}

func TestEmptyInput(t *testing.T) {
	toks, final := Tokenise(testLanguage(), "", Code)
	assert.Empty(t, toks)
	assert.Equal(t, Code, final)

	toks, final = Tokenise(testLanguage(), "", CommentState(3))
	assert.Empty(t, toks)
	assert.Equal(t, CommentState(3), final)
}

func TestEarlierMatchBeatsHigherPriorityRule(t *testing.T) {
	// The round bracket out-ranks the identifier rule, but the
	// identifier starts earlier, and a smaller offset always wins.
	toks, _ := Tokenise(testLanguage(), "ab (", Code)
	require.Equal(t, []TokenKind{Identifier, RoundBracketOpen}, kindsOf(toks))
}
