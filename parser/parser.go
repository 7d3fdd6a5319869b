package parser

import (
	"fmt"
	"io"

	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/grammar"
	"github.com/blizzy78/ruledsl/lexer"
	"github.com/blizzy78/ruledsl/parsetree"
	"github.com/blizzy78/ruledsl/symbol"
)

// Parser expands a grammar.Grammar against a token stream using recursive-descent
// backtracking, memoizing rejections only (never successes), keyed on
// (non-terminal kind, production index, input position): a production that fails at a
// given position will fail there every time it is retried, so remembering the failure
// keeps re-exploration of a shared prefix from going exponential, without the extra
// bookkeeping a full packrat success cache would need for a grammar this small.
type Parser struct {
	grammar     grammar.Grammar
	startSymbol symbol.NonTerminalKind
	trace       io.Writer
}

// Opt is the type of a function that configures a Parser under construction.
type Opt func(*Parser)

// WithGrammar overrides the grammar a Parser expands against. The default is
// grammar.Base().
func WithGrammar(g grammar.Grammar) Opt {
	return func(p *Parser) {
		p.grammar = g
	}
}

// WithStartSymbol overrides the non-terminal kind a Parser expands from. The default
// is symbol.Block.
func WithStartSymbol(kind symbol.NonTerminalKind) Opt {
	return func(p *Parser) {
		p.startSymbol = kind
	}
}

// WithTrace writes one line per production attempt, and its outcome, to w. Useful when
// a custom grammar behaves unexpectedly.
func WithTrace(w io.Writer) Opt {
	return func(p *Parser) {
		p.trace = w
	}
}

// New returns a Parser configured by opts, defaulting to grammar.Base() starting at
// symbol.Block.
func New(opts ...Opt) *Parser {
	p := &Parser{
		grammar:     grammar.Base(),
		startSymbol: symbol.Block,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type memoKey struct {
	kind    symbol.NonTerminalKind
	prodIdx int
	pos     int
}

type state struct {
	tokens   []lexer.Token
	grammar  grammar.Grammar
	rejected map[memoKey]bool
	trace    io.Writer
}

// Parse expands p's start symbol against tokens, returning the resulting concrete
// parse tree. Parsing only succeeds if some production chain consumes every token: one
// that parses a leading subsequence but leaves a trailing remainder is as much a
// syntax error as one that never gets started.
func (p *Parser) Parse(tokens []lexer.Token) (*parsetree.Node, error) {
	st := &state{
		tokens:   tokens,
		grammar:  p.grammar,
		rejected: map[memoKey]bool{},
		trace:    p.trace,
	}

	node, next, ok := st.expandNonTerminal(p.startSymbol, 0)
	if !ok || next != len(tokens) {
		return nil, syntaxErrorAt(tokens, next)
	}

	return node, nil
}

func syntaxErrorAt(tokens []lexer.Token, pos int) error {
	if pos < len(tokens) {
		t := tokens[pos]
		return dslerror.NewAtf(dslerror.Syntax, t.Line, t.Col, "input cannot be parsed")
	}
	line, col := 1, 1
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		line, col = last.Line, last.Col+len(last.Lexeme)
	}
	return dslerror.NewAtf(dslerror.Syntax, line, col, "input cannot be parsed")
}

func (st *state) expandNonTerminal(kind symbol.NonTerminalKind, pos int) (*parsetree.Node, int, bool) {
	for idx, production := range st.grammar[kind] {
		key := memoKey{kind: kind, prodIdx: idx, pos: pos}
		if st.rejected[key] {
			continue
		}

		node, next, ok := st.expandProduction(kind, production.Body, pos)
		if ok {
			st.log("accept %s production %d at %d, consumed through %d", kind, idx, pos, next)
			return node, next, true
		}

		st.log("reject %s production %d at %d", kind, idx, pos)
		st.rejected[key] = true
	}

	return nil, pos, false
}

func (st *state) expandProduction(kind symbol.NonTerminalKind, body []symbol.Kind, pos int) (*parsetree.Node, int, bool) {
	node := parsetree.NonTerminalNode(kind)
	cur := pos

	for _, sym := range body {
		switch s := sym.(type) {
		case symbol.TerminalKind:
			if cur >= len(st.tokens) || st.tokens[cur].Kind != s {
				return nil, pos, false
			}
			node.Children = append(node.Children, parsetree.Leaf(st.tokens[cur]))
			cur++

		case symbol.NonTerminalKind:
			child, next, ok := st.expandNonTerminal(s, cur)
			if !ok {
				return nil, pos, false
			}
			node.Children = append(node.Children, child)
			cur = next

		default:
			return nil, pos, false
		}
	}

	return node, cur, true
}

func (st *state) log(format string, args ...interface{}) {
	if st.trace == nil {
		return
	}
	fmt.Fprintf(st.trace, format+"\n", args...)
}
