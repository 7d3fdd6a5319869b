package grammar

import "github.com/blizzy78/ruledsl/symbol"

// Production is an immutable ordered sequence of symbol kinds defining one alternative
// for a non-terminal. Two productions are equal iff their bodies are equal; unlike the
// source material's dataclass, a Production here never needs its own hash, since the
// parser's rejection memo keys on the non-terminal kind and the production's index
// within its rule rather than on the production value itself.
type Production struct {
	Body []symbol.Kind
}

// New returns a Production with the given body, in order.
func New(body ...symbol.Kind) Production {
	return Production{Body: body}
}

// Grammar is an ordered mapping from non-terminal kind to its list of productions.
type Grammar map[symbol.NonTerminalKind][]Production

// Clone returns a shallow copy of g, suitable as the basis for a host override that
// replaces the production list for one or more non-terminal kinds while inheriting
// every other rule unchanged.
func (g Grammar) Clone() Grammar {
	c := make(Grammar, len(g))
	for k, v := range g {
		productions := make([]Production, len(v))
		copy(productions, v)
		c[k] = productions
	}
	return c
}

// With returns a clone of g with the production list for kind replaced by productions.
// It is the idiomatic way for a host to override a single rule (typically Action, to
// swap in a custom action family) while keeping the rest of the base grammar intact:
//
//	g := grammar.Base().With(symbol.Action, customActionProductions...)
func (g Grammar) With(kind symbol.NonTerminalKind, productions ...Production) Grammar {
	c := g.Clone()
	c[kind] = productions
	return c
}
