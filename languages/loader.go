package languages

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/glotedit/glot"
)

// Description is the YAML shape of a language description file. Pattern
// fields hold regexp sources; one that fails to compile disables that
// lexical category rather than failing the load, the same degradation
// the programmatic constructor applies.
type Description struct {
	Name                string       `yaml:"name"`
	SquareBrackets      bool         `yaml:"squareBrackets"`
	CurlyBrackets       bool         `yaml:"curlyBrackets"`
	String              string       `yaml:"string"`
	Character           string       `yaml:"character"`
	Number              string       `yaml:"number"`
	SingleLineComment   string       `yaml:"singleLineComment"`
	NestedComment       *CommentPair `yaml:"nestedComment"`
	Identifier          string       `yaml:"identifier"`
	Operator            string       `yaml:"operator"`
	ReservedIdentifiers []string     `yaml:"reservedIdentifiers"`
	ReservedOperators   []string     `yaml:"reservedOperators"`
}

type CommentPair struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Load reads one YAML language description from r.
func Load(r io.Reader) (*glot.LanguageConfiguration, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading language description")
	}
	var desc Description
	if err := yaml.Unmarshal(raw, &desc); err != nil {
		return nil, errors.Wrap(err, "parsing language description")
	}
	if desc.Name == "" {
		return nil, errors.New("language description has no name")
	}
	return desc.Configuration(), nil
}

// LoadFile reads one YAML language description file.
func LoadFile(path string) (*glot.LanguageConfiguration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening language description %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Configuration converts the description through the pattern-compiling
// constructor.
func (d Description) Configuration() *glot.LanguageConfiguration {
	p := glot.LanguagePatterns{
		Name:                   d.Name,
		SupportsSquareBrackets: d.SquareBrackets,
		SupportsCurlyBrackets:  d.CurlyBrackets,
		StringPattern:          d.String,
		CharacterPattern:       d.Character,
		NumberPattern:          d.Number,
		SingleLineComment:      d.SingleLineComment,
		IdentifierPattern:      d.Identifier,
		OperatorPattern:        d.Operator,
		ReservedIdentifiers:    d.ReservedIdentifiers,
		ReservedOperators:      d.ReservedOperators,
	}
	if d.NestedComment != nil {
		p.NestedComment = &glot.CommentPair{Open: d.NestedComment.Open, Close: d.NestedComment.Close}
	}
	return glot.NewLanguageConfiguration(p)
}
