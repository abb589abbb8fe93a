package glot

// TokenKind classifies a lexeme. The set is closed: everything the
// scanner can emit is listed here, so switches over TokenKind can be
// exhaustive.
type TokenKind int

const (
	RoundBracketOpen TokenKind = iota
	RoundBracketClose
	SquareBracketOpen
	SquareBracketClose
	CurlyBracketOpen
	CurlyBracketClose
	String
	Character
	Number
	SingleLineComment
	NestedCommentOpen
	NestedCommentClose
	Identifier
	Operator
	Keyword
	Symbol
	Regexp
)

func (k TokenKind) String() string {
	switch k {
	case RoundBracketOpen:
		return "roundBracketOpen"
	case RoundBracketClose:
		return "roundBracketClose"
	case SquareBracketOpen:
		return "squareBracketOpen"
	case SquareBracketClose:
		return "squareBracketClose"
	case CurlyBracketOpen:
		return "curlyBracketOpen"
	case CurlyBracketClose:
		return "curlyBracketClose"
	case String:
		return "string"
	case Character:
		return "character"
	case Number:
		return "number"
	case SingleLineComment:
		return "singleLineComment"
	case NestedCommentOpen:
		return "nestedCommentOpen"
	case NestedCommentClose:
		return "nestedCommentClose"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	case Regexp:
		return "regexp"
	default:
		return "unknown"
	}
}

// IsOpenBracket reports whether k opens a bracketed region. The
// nested-comment delimiters count as a bracket pair so that structural
// bracket matching works across comment regions too.
func (k TokenKind) IsOpenBracket() bool {
	switch k {
	case RoundBracketOpen, SquareBracketOpen, CurlyBracketOpen, NestedCommentOpen:
		return true
	default:
		return false
	}
}

// IsCloseBracket reports whether k closes a bracketed region.
func (k TokenKind) IsCloseBracket() bool {
	switch k {
	case RoundBracketClose, SquareBracketClose, CurlyBracketClose, NestedCommentClose:
		return true
	default:
		return false
	}
}

// MatchingBracket returns the partner of a bracket kind. It is its own
// inverse over the bracket kinds; ok is false for every other kind.
func (k TokenKind) MatchingBracket() (TokenKind, bool) {
	switch k {
	case RoundBracketOpen:
		return RoundBracketClose, true
	case RoundBracketClose:
		return RoundBracketOpen, true
	case SquareBracketOpen:
		return SquareBracketClose, true
	case SquareBracketClose:
		return SquareBracketOpen, true
	case CurlyBracketOpen:
		return CurlyBracketClose, true
	case CurlyBracketClose:
		return CurlyBracketOpen, true
	case NestedCommentOpen:
		return NestedCommentClose, true
	case NestedCommentClose:
		return NestedCommentOpen, true
	default:
		return 0, false
	}
}

func (k TokenKind) IsComment() bool {
	switch k {
	case SingleLineComment, NestedCommentOpen, NestedCommentClose:
		return true
	default:
		return false
	}
}

func (k TokenKind) IsIdentifier() bool { return k == Identifier }

func (k TokenKind) IsOperator() bool { return k == Operator }

// Flavour is a secondary classification of identifier and operator
// tokens used for richer styling. The scanner itself always emits
// FlavourNone; flavours are assigned later by semantic consumers.
type Flavour int

const (
	FlavourNone Flavour = iota
	FlavourModule
	FlavourType
	FlavourParameter
	FlavourTypeParameter
	FlavourVariable
	FlavourProperty
	FlavourEnumCase
	FlavourFunction
	FlavourMethod
	FlavourMacro
	FlavourModifier
)

// IsType reports whether f is the type flavour; only then does the
// token's TypeFlavour carry meaning.
func (f Flavour) IsType() bool { return f == FlavourType }

func (f Flavour) String() string {
	switch f {
	case FlavourNone:
		return "none"
	case FlavourModule:
		return "module"
	case FlavourType:
		return "type"
	case FlavourParameter:
		return "parameter"
	case FlavourTypeParameter:
		return "typeParameter"
	case FlavourVariable:
		return "variable"
	case FlavourProperty:
		return "property"
	case FlavourEnumCase:
		return "enumCase"
	case FlavourFunction:
		return "function"
	case FlavourMethod:
		return "method"
	case FlavourMacro:
		return "macro"
	case FlavourModifier:
		return "modifier"
	default:
		return "none"
	}
}

// TypeFlavour refines FlavourType.
type TypeFlavour int

const (
	TypeFlavourOther TypeFlavour = iota
	TypeFlavourClass
	TypeFlavourStruct
	TypeFlavourEnum
	TypeFlavourProtocol
)

// Token is a classified unit of source text, src[Start:End).
type Token struct {
	Kind        TokenKind
	Start       int
	End         int
	Flavour     Flavour
	TypeFlavour TypeFlavour
	// State is the scanner state immediately after this token. Callers
	// doing incremental re-highlighting persist it at line boundaries.
	State State
}
