package glot

import "regexp"

// transition is the state change a rule applies when it fires. Rules
// carry an enumerated kind instead of a function so that rule lists stay
// plain, comparable data.
type transition int

const (
	transitionNone transition = iota
	transitionOpenComment
	transitionCloseComment
)

func (t transition) apply(s State) State {
	switch t {
	case transitionOpenComment:
		return s.openComment()
	case transitionCloseComment:
		return s.closeComment()
	default:
		return s
	}
}

// rule binds a matcher to the token it emits. Exactly one of lexeme and
// pattern is set: fixed lexemes match by substring search, patterns by
// leftmost regexp match.
type rule struct {
	lexeme     string
	pattern    *regexp.Regexp
	kind       TokenKind
	transition transition
}

// TokenDictionary holds the per-state rule lists derived from one
// language configuration. List order encodes match priority and is the
// tie-break when two rules match at the same position. A dictionary is
// immutable once built and shared across any number of scanners.
type TokenDictionary struct {
	code    []rule
	comment []rule
}

func (d *TokenDictionary) rules(s State) []rule {
	if s.tag() == tagComment {
		return d.comment
	}
	return d.code
}

// NewTokenDictionary derives the rule lists from l. In the code list,
// structural and literal rules come before the generic identifier and
// operator rules, and the word-bounded reserved rules come last; the
// scan-time leftmost-match policy makes the reserved rules a carve-out
// from the identifier language rather than an addition to it. The
// comment list holds only the nested-comment delimiters: nothing else
// matches inside a block comment.
func NewTokenDictionary(l *LanguageConfiguration) *TokenDictionary {
	d := &TokenDictionary{}
	d.code = append(d.code,
		rule{lexeme: "(", kind: RoundBracketOpen},
		rule{lexeme: ")", kind: RoundBracketClose},
	)
	if l.SupportsSquareBrackets {
		d.code = append(d.code,
			rule{lexeme: "[", kind: SquareBracketOpen},
			rule{lexeme: "]", kind: SquareBracketClose},
		)
	}
	if l.SupportsCurlyBrackets {
		d.code = append(d.code,
			rule{lexeme: "{", kind: CurlyBracketOpen},
			rule{lexeme: "}", kind: CurlyBracketClose},
		)
	}
	if l.StringRegexp != nil {
		d.code = append(d.code, rule{pattern: l.StringRegexp, kind: String})
	}
	if l.CharacterRegexp != nil {
		d.code = append(d.code, rule{pattern: l.CharacterRegexp, kind: Character})
	}
	if l.NumberRegexp != nil {
		d.code = append(d.code, rule{pattern: l.NumberRegexp, kind: Number})
	}
	if l.SingleLineComment != "" {
		d.code = append(d.code, rule{lexeme: l.SingleLineComment, kind: SingleLineComment})
	}
	if l.NestedComment != nil {
		open := rule{lexeme: l.NestedComment.Open, kind: NestedCommentOpen, transition: transitionOpenComment}
		clos := rule{lexeme: l.NestedComment.Close, kind: NestedCommentClose, transition: transitionCloseComment}
		d.code = append(d.code, open, clos)
		d.comment = append(d.comment, open, clos)
	}
	// Reserved rules go ahead of the generic identifier and operator
	// rules: on a same-position tie the earlier rule wins, and a reserved
	// word must beat the identifier rule that would otherwise consume it.
	// The word boundaries keep a reserved rule from firing on a substring
	// of a longer identifier, so the generic rules still win everywhere
	// else.
	for _, w := range l.ReservedIdentifiers {
		d.code = append(d.code, reservedRule(w, Keyword))
	}
	for _, w := range l.ReservedOperators {
		d.code = append(d.code, reservedRule(w, Symbol))
	}
	if l.IdentifierRegexp != nil {
		d.code = append(d.code, rule{pattern: l.IdentifierRegexp, kind: Identifier})
	}
	if l.OperatorRegexp != nil {
		d.code = append(d.code, rule{pattern: l.OperatorRegexp, kind: Operator})
	}
	return d
}

// reservedRule matches lexeme only when bounded by word boundaries, so a
// reserved word never fires on a substring of a longer identifier.
func reservedRule(lexeme string, kind TokenKind) rule {
	return rule{
		pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(lexeme) + `\b`),
		kind:    kind,
	}
}
