package parsetree

import (
	"testing"

	"github.com/matryer/is"

	"github.com/blizzy78/ruledsl/lexer"
	"github.com/blizzy78/ruledsl/symbol"
)

func TestLeafAndNonTerminalNode(t *testing.T) {
	is := is.New(t)

	leaf := Leaf(lexer.Token{Kind: symbol.IfLiteral, Lexeme: "IF"})
	is.True(leaf.IsTerminal())
	is.Equal(leaf.Token.Kind, symbol.IfLiteral)

	interior := NonTerminalNode(symbol.Block)
	is.True(!interior.IsTerminal())
	is.Equal(interior.NonTerminal, symbol.Block)

	interior.Children = append(interior.Children, leaf)
	is.Equal(len(interior.Children), 1)
	is.True(interior.Children[0].IsTerminal())
}
