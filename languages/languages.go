// Package languages provides ready-made tokeniser configurations for a
// handful of languages, plus a loader for user-supplied language
// description files.
package languages

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/swift"

	"github.com/glotedit/glot"
)

// TreeSitter is the service payload attached to configurations that have
// a tree-sitter grammar. Stage-two consumers retrieve it through the
// configuration's service handle; the tokeniser itself carries the
// handle untouched.
type TreeSitter struct {
	Language       *sitter.Language
	HighlightQuery []byte
}

// Service handles are shared per language so that independently
// constructed configurations of the same language compare equal.
var (
	goService = glot.NewLanguageService(&TreeSitter{
		Language: golang.GetLanguage(),
		HighlightQuery: []byte(`
[
  "break"
  "case"
  "chan"
  "const"
  "continue"
  "default"
  "defer"
  "else"
  "fallthrough"
  "for"
  "func"
  "go"
  "goto"
  "if"
  "import"
  "interface"
  "map"
  "package"
  "range"
  "return"
  "select"
  "struct"
  "switch"
  "type"
  "var"
] @keyword

(type_identifier) @type
(comment) @comment
[(interpreted_string_literal) (raw_string_literal)] @string
(function_declaration name: (_) @function_name)
(call_expression function: (_) @function_name)
`),
	})

	swiftService = glot.NewLanguageService(&TreeSitter{
		Language: swift.GetLanguage(),
		HighlightQuery: []byte(`
(comment) @comment
(line_string_literal) @string
(simple_identifier) @ident
`),
	})
)

// Go returns the lexical configuration for Go source.
func Go() *glot.LanguageConfiguration {
	return glot.NewLanguageConfiguration(glot.LanguagePatterns{
		Name:                   "Go",
		SupportsSquareBrackets: true,
		SupportsCurlyBrackets:  true,
		StringPattern:          `"(?:[^"\\` + "\n" + `]|\\.)*"` + "|`[^`]*`",
		CharacterPattern:       `'(?:[^'\\` + "\n" + `]|\\[^'` + "\n" + `]+)'`,
		NumberPattern:          `\b(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|[0-9][0-9_]*(?:\.[0-9_]+)?(?:[eE][+-]?[0-9]+)?i?)\b`,
		SingleLineComment:      "//",
		NestedComment:          &glot.CommentPair{Open: "/*", Close: "*/"},
		IdentifierPattern:      `[\p{L}_][\p{L}\p{Nd}_]*`,
		OperatorPattern:        `:=|[-+*/%=!<>&|^~]+`,
		ReservedIdentifiers: []string{
			"break", "case", "chan", "const", "continue", "default",
			"defer", "else", "fallthrough", "for", "func", "go", "goto",
			"if", "import", "interface", "map", "package", "range",
			"return", "select", "struct", "switch", "type", "var",
		},
		Service: goService,
	})
}

// Swift returns the lexical configuration for Swift source. Swift block
// comments nest, which is exactly what the scanner's depth counter is
// for.
func Swift() *glot.LanguageConfiguration {
	return glot.NewLanguageConfiguration(glot.LanguagePatterns{
		Name:                   "Swift",
		SupportsSquareBrackets: true,
		SupportsCurlyBrackets:  true,
		StringPattern:          `"(?:[^"\\` + "\n" + `]|\\.)*"`,
		NumberPattern:          `\b(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|[0-9][0-9_]*(?:\.[0-9_]+)?(?:[eE][+-]?[0-9]+)?)\b`,
		SingleLineComment:      "//",
		NestedComment:          &glot.CommentPair{Open: "/*", Close: "*/"},
		IdentifierPattern:      `[\p{L}_][\p{L}\p{Nd}_]*`,
		OperatorPattern:        `[-/=+!*%<>&|^~?]+`,
		ReservedIdentifiers: []string{
			"associatedtype", "class", "deinit", "enum", "extension",
			"fileprivate", "func", "import", "init", "inout", "internal",
			"let", "open", "operator", "private", "protocol", "public",
			"rethrows", "static", "struct", "subscript", "typealias",
			"var", "break", "case", "continue", "default", "defer", "do",
			"else", "fallthrough", "for", "guard", "if", "in", "repeat",
			"return", "switch", "where", "while", "as", "catch", "false",
			"is", "nil", "super", "self", "Self", "throw", "throws",
			"true", "try",
		},
		Service: swiftService,
	})
}

// Haskell returns the lexical configuration for Haskell source. Haskell
// block comments nest too; there is no tree-sitter grammar wired for it,
// so the configuration carries no service handle.
func Haskell() *glot.LanguageConfiguration {
	// Curly brackets stay non-structural: "{" is almost always the start
	// of a "{-" comment delimiter, and the bracket rule would win the
	// same-offset tie against the comment rule.
	return glot.NewLanguageConfiguration(glot.LanguagePatterns{
		Name:                   "Haskell",
		SupportsSquareBrackets: true,
		SupportsCurlyBrackets:  false,
		StringPattern:          `"(?:[^"\\` + "\n" + `]|\\.)*"`,
		CharacterPattern:       `'(?:[^'\\` + "\n" + `]|\\[^'` + "\n" + `]+)'`,
		NumberPattern:          `\b(?:0[xX][0-9a-fA-F]+|0[oO][0-7]+|[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?)\b`,
		SingleLineComment:      "--",
		NestedComment:          &glot.CommentPair{Open: "{-", Close: "-}"},
		IdentifierPattern:      `[\p{L}_][\p{L}\p{Nd}_']*`,
		OperatorPattern:        `[-!#$%&*+./<=>?@\\^|~:]+`,
		ReservedIdentifiers: []string{
			"case", "class", "data", "default", "deriving", "do", "else",
			"foreign", "if", "import", "in", "infix", "infixl", "infixr",
			"instance", "let", "module", "newtype", "of", "then", "type",
			"where",
		},
		ReservedOperators: []string{"::", "=", "=>", "->", "<-", "|", "@"},
	})
}

// Default returns a registry holding every built-in language plus plain
// text, keyed by the usual file extensions.
func Default() *glot.Registry {
	r := glot.NewRegistry()
	for _, entry := range []struct {
		config     *glot.LanguageConfiguration
		extensions []string
	}{
		{glot.PlainText(), []string{".txt"}},
		{Go(), []string{".go"}},
		{Swift(), []string{".swift"}},
		{Haskell(), []string{".hs", ".lhs"}},
	} {
		if err := r.Register(entry.config, entry.extensions...); err != nil {
			// Built-in names are distinct; a failure here is a bug.
			panic(err)
		}
	}
	return r
}
