package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glotedit/glot"
	"github.com/glotedit/glot/languages"
)

var (
	languageName string
	dumpTokens   bool
	searchQuery  string
)

func main() {
	root := &cobra.Command{
		Use:          "glot",
		Short:        "lexical tokeniser for editor highlighting",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&languageName, "language", "l", "", "language name, defaults to the file extension's language")

	tokens := &cobra.Command{
		Use:   "tokens <file>",
		Short: "print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokens,
	}
	tokens.Flags().BoolVar(&dumpTokens, "dump", false, "dump raw token values")

	highlight := &cobra.Command{
		Use:   "highlight <file>",
		Short: "print a file with ANSI-coloured tokens",
		Args:  cobra.ExactArgs(1),
		RunE:  runHighlight,
	}

	langs := &cobra.Command{
		Use:   "languages",
		Short: "list known languages",
		Args:  cobra.NoArgs,
		RunE:  runLanguages,
	}
	langs.Flags().StringVar(&searchQuery, "search", "", "fuzzy-filter language names")

	root.AddCommand(tokens, highlight, langs)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func configFor(path string) (*glot.LanguageConfiguration, error) {
	registry := languages.Default()
	if languageName == "" {
		return registry.ForFile(path), nil
	}
	cfg, ok := registry.Lookup(languageName)
	if !ok {
		return nil, fmt.Errorf("unknown language %q, try: glot languages", languageName)
	}
	return cfg, nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	cfg, err := configFor(args[0])
	if err != nil {
		return err
	}
	toks, final := glot.Tokenise(cfg, string(src), glot.Code)
	if dumpTokens {
		spew.Dump(toks)
		return nil
	}
	for _, tok := range toks {
		fmt.Printf("%6d:%-6d %-18s %q\n", tok.Start, tok.End, tok.Kind, src[tok.Start:tok.End])
	}
	fmt.Printf("final state: %s\n", final)
	return nil
}

var kindColors = map[glot.TokenKind]*color.Color{
	glot.String:             color.New(color.FgGreen),
	glot.Character:          color.New(color.FgGreen),
	glot.Number:             color.New(color.FgMagenta),
	glot.Keyword:            color.New(color.FgYellow),
	glot.Symbol:             color.New(color.FgRed),
	glot.Operator:           color.New(color.FgRed),
	glot.SingleLineComment:  color.New(color.FgHiBlack),
	glot.NestedCommentOpen:  color.New(color.FgHiBlack),
	glot.NestedCommentClose: color.New(color.FgHiBlack),
	glot.RoundBracketOpen:   color.New(color.FgCyan),
	glot.RoundBracketClose:  color.New(color.FgCyan),
	glot.SquareBracketOpen:  color.New(color.FgCyan),
	glot.SquareBracketClose: color.New(color.FgCyan),
	glot.CurlyBracketOpen:   color.New(color.FgCyan),
	glot.CurlyBracketClose:  color.New(color.FgCyan),
}

func runHighlight(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	cfg, err := configFor(args[0])
	if err != nil {
		return err
	}
	text := string(src)
	sc := glot.NewScanner(glot.NewTokenDictionary(cfg), text, glot.Code)
	pos := 0
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		// Untokenised text between matches renders unstyled.
		fmt.Print(text[pos:tok.Start])
		if c, ok := kindColors[tok.Kind]; ok {
			c.Print(text[tok.Start:tok.End])
		} else {
			fmt.Print(text[tok.Start:tok.End])
		}
		pos = tok.End
	}
	fmt.Print(text[pos:])
	return nil
}

func runLanguages(cmd *cobra.Command, args []string) error {
	registry := languages.Default()
	names := registry.Names()
	if searchQuery != "" {
		names = registry.Search(searchQuery)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
