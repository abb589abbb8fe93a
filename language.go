package glot

import (
	"regexp"

	"github.com/sirupsen/logrus"
)

// CommentPair holds the delimiters of a depth-counted block comment.
type CommentPair struct {
	Open  string
	Close string
}

// LanguageConfiguration describes the lexical surface of one language:
// which characters act as structural brackets, what its literals and
// comments look like, and which words are reserved. Values are immutable
// after construction and safe to share across concurrent tokenisation
// runs.
//
// Name must be unique across configurations that differ in any other
// field, because equality and dictionary caching key on the name alone
// (see Equal). Plain construction leaves that uniqueness to the caller;
// a Registry checks it.
type LanguageConfiguration struct {
	Name string

	// Bracket support. Round brackets are always structural; square and
	// curly brackets are plain text in languages that lack them.
	SupportsSquareBrackets bool
	SupportsCurlyBrackets  bool

	// Literal grammars. A nil regexp means the language has no literal
	// of that kind.
	StringRegexp    *regexp.Regexp
	CharacterRegexp *regexp.Regexp
	NumberRegexp    *regexp.Regexp

	// Comment lexemes. An empty SingleLineComment or nil NestedComment
	// means the language has no comment of that form.
	SingleLineComment string
	NestedComment     *CommentPair

	// Identifier and operator grammars. OperatorRegexp may be nil when
	// operators are carried entirely by the identifier grammar.
	IdentifierRegexp *regexp.Regexp
	OperatorRegexp   *regexp.Regexp

	// Exact-match reserved lexemes, in insertion order. Order does not
	// affect matching: all reserved rules carry equal priority above the
	// generic identifier and operator rules.
	ReservedIdentifiers []string
	ReservedOperators   []string

	// Service is carried untouched for stage-two semantic highlighting.
	Service *LanguageService
}

// PlainText returns the canonical no-op configuration used when no
// language is selected: no brackets, no literals, no comments. It still
// yields a valid token dictionary.
func PlainText() *LanguageConfiguration {
	return &LanguageConfiguration{Name: "Text"}
}

// Equal reports configuration identity: same name and the very same
// service handle. Field contents never participate, which keeps swapping
// configurations cheap for UI diffing.
func (l *LanguageConfiguration) Equal(o *LanguageConfiguration) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.Name == o.Name && l.Service == o.Service
}

// Lexeme returns the canonical fixed lexeme of kind, for the kinds that
// have exactly one surface form: the six brackets and, when the language
// defines them, the comment markers. ok is false for every kind whose
// lexeme varies by input.
func (l *LanguageConfiguration) Lexeme(kind TokenKind) (string, bool) {
	switch kind {
	case RoundBracketOpen:
		return "(", true
	case RoundBracketClose:
		return ")", true
	case SquareBracketOpen:
		return "[", true
	case SquareBracketClose:
		return "]", true
	case CurlyBracketOpen:
		return "{", true
	case CurlyBracketClose:
		return "}", true
	case SingleLineComment:
		if l.SingleLineComment == "" {
			return "", false
		}
		return l.SingleLineComment, true
	case NestedCommentOpen:
		if l.NestedComment == nil {
			return "", false
		}
		return l.NestedComment.Open, true
	case NestedCommentClose:
		if l.NestedComment == nil {
			return "", false
		}
		return l.NestedComment.Close, true
	default:
		return "", false
	}
}

// LanguagePatterns mirrors LanguageConfiguration with the lexical rules
// given as regexp source strings instead of compiled regexps. It is the
// shape language description files decode into.
type LanguagePatterns struct {
	Name                   string
	SupportsSquareBrackets bool
	SupportsCurlyBrackets  bool
	StringPattern          string
	CharacterPattern       string
	NumberPattern          string
	SingleLineComment      string
	NestedComment          *CommentPair
	IdentifierPattern      string
	OperatorPattern        string
	ReservedIdentifiers    []string
	ReservedOperators      []string
	Service                *LanguageService
}

// NewLanguageConfiguration compiles the pattern fields of p into a
// configuration. A pattern that fails to compile disables that one
// lexical category and logs a diagnostic; construction itself never
// fails, so one bad pattern costs number highlighting, not the whole
// language.
func NewLanguageConfiguration(p LanguagePatterns) *LanguageConfiguration {
	return &LanguageConfiguration{
		Name:                   p.Name,
		SupportsSquareBrackets: p.SupportsSquareBrackets,
		SupportsCurlyBrackets:  p.SupportsCurlyBrackets,
		StringRegexp:           compileRule(p.Name, "string", p.StringPattern),
		CharacterRegexp:        compileRule(p.Name, "character", p.CharacterPattern),
		NumberRegexp:           compileRule(p.Name, "number", p.NumberPattern),
		SingleLineComment:      p.SingleLineComment,
		NestedComment:          p.NestedComment,
		IdentifierRegexp:       compileRule(p.Name, "identifier", p.IdentifierPattern),
		OperatorRegexp:         compileRule(p.Name, "operator", p.OperatorPattern),
		ReservedIdentifiers:    p.ReservedIdentifiers,
		ReservedOperators:      p.ReservedOperators,
		Service:                p.Service,
	}
}

func compileRule(language, rule, pattern string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.WithFields(logrus.Fields{
			"language": language,
			"rule":     rule,
		}).WithError(err).Warn("dropping lexical rule, pattern does not compile")
		return nil
	}
	return re
}
