package lexer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/symbol"
)

// Factory builds the Representable for a recognized lexeme of one terminal kind.
type Factory func(lexeme string) (ast.Representable, error)

// TerminalDef pairs a terminal kind with the regex fragment that recognizes it and the
// Factory that turns a matched lexeme into its Representable.
type TerminalDef struct {
	Kind    symbol.TerminalKind
	Regex   string
	Factory Factory
}

// Lexer tokenizes input text against a single compiled alternation built from its
// terminal catalog. regexp.Compile (rather than CompilePOSIX) is used deliberately:
// it resolves ambiguous alternatives leftmost-first, in catalog order, exactly the
// "first-match-wins" semantics the catalog's ordering depends on (see BaseCatalog).
type Lexer struct {
	re   *regexp.Regexp
	defs map[symbol.TerminalKind]TerminalDef
}

// Opt is the type of a function that configures a Lexer under construction.
type Opt func(*config)

type config struct {
	catalog    []TerminalDef
	inclusions []TerminalDef
	exclusions map[symbol.TerminalKind]bool
}

// WithBaseCatalog replaces the entire default terminal catalog with catalog, in order.
// Use this when a host wants to build a lexer from scratch rather than extend the base
// one; for adding or removing a handful of kinds, WithInclusions/WithExclusions are
// usually simpler.
func WithBaseCatalog(catalog []TerminalDef) Opt {
	return func(c *config) {
		c.catalog = catalog
	}
}

// WithInclusions adds host-supplied terminal kinds ahead of every catalog kind, so an
// included kind is tried first at each position and can shadow a catalog kind without
// reordering the catalog itself; only the catch-all kind (InvalidSymbol) stays last. An
// included kind whose name is already in the catalog takes the place of the catalog's
// entry of that name.
func WithInclusions(defs ...TerminalDef) Opt {
	return func(c *config) {
		c.inclusions = append(c.inclusions, defs...)
	}
}

// WithExclusions removes the given kinds from the effective catalog, whether they came
// from the base catalog or from WithInclusions.
func WithExclusions(kinds ...symbol.TerminalKind) Opt {
	return func(c *config) {
		for _, k := range kinds {
			c.exclusions[k] = true
		}
	}
}

// New builds a Lexer from BaseCatalog (or the catalog WithBaseCatalog supplied),
// extended by any WithInclusions and trimmed by any WithExclusions, and compiles it
// into a single alternation regex.
func New(opts ...Opt) (*Lexer, error) {
	c := &config{
		catalog:    BaseCatalog(),
		exclusions: map[symbol.TerminalKind]bool{},
	}
	for _, opt := range opts {
		opt(c)
	}

	var catchAll *TerminalDef
	defs := make(map[symbol.TerminalKind]TerminalDef)
	var order []symbol.TerminalKind

	add := func(d TerminalDef) {
		if c.exclusions[d.Kind] {
			return
		}
		if _, ok := defs[d.Kind]; ok {
			return
		}
		if d.Kind == symbol.InvalidSymbol {
			dd := d
			catchAll = &dd
			return
		}
		defs[d.Kind] = d
		order = append(order, d.Kind)
	}

	for _, d := range c.inclusions {
		add(d)
	}
	for _, d := range c.catalog {
		add(d)
	}
	if catchAll != nil {
		defs[catchAll.Kind] = *catchAll
		order = append(order, catchAll.Kind)
	}

	parts := make([]string, 0, len(order))
	for _, kind := range order {
		parts = append(parts, fmt.Sprintf("(?P<%s>%s)", kind, defs[kind].Regex))
	}

	re, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile lexer pattern: %w", err)
	}

	return &Lexer{re: re, defs: defs}, nil
}

// Tokenize scans input left to right, skipping runs of plain whitespace (space and
// newline) between recognized lexemes, and returns the resulting tokens in order. It
// fails fast: the first lexeme matched by InvalidSymbol (or any unrecognized run of
// non-whitespace text, which InvalidSymbol exists to catch) is reported as a Syntax
// error rather than collected for a later validation pass.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	matches := l.re.FindAllStringSubmatchIndex(input, -1)
	names := l.re.SubexpNames()

	tokens := make([]Token, 0, len(matches))
	line, col := 1, 1
	pos := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		line, col = advance(line, col, input[pos:start])

		lexeme := input[start:end]

		var kind symbol.TerminalKind
		for i := 2; i < len(m); i += 2 {
			if m[i] == -1 {
				continue
			}
			kind = symbol.TerminalKind(names[i/2])
			break
		}

		if kind == symbol.InvalidSymbol || kind == "" {
			return nil, dslerror.NewAtf(dslerror.Syntax, line, col, "unknown syntax %q", lexeme)
		}

		def := l.defs[kind]

		representable, err := def.Factory(lexeme)
		if err != nil {
			return nil, dslerror.NewAt(dslerror.Syntax, line, col, err)
		}

		tokens = append(tokens, Token{
			Kind:          kind,
			Lexeme:        lexeme,
			Line:          line,
			Col:           col,
			Representable: representable,
		})

		line, col = advance(line, col, lexeme)
		pos = end
	}

	return tokens, nil
}

func advance(line, col int, s string) (int, int) {
	for _, r := range s {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
