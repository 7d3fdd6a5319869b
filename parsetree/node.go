package parsetree

import (
	"github.com/blizzy78/ruledsl/lexer"
	"github.com/blizzy78/ruledsl/symbol"
)

// Node is one node of the concrete parse tree: either a leaf wrapping a single
// lexer.Token, or an interior node produced by expanding one production of a
// non-terminal, holding its matched children in order.
type Node struct {
	// NonTerminal is the kind expanded to produce this node's Children. It is the
	// zero value for a leaf node.
	NonTerminal symbol.NonTerminalKind

	// Token is set only on a leaf node.
	Token *lexer.Token

	Children []*Node
}

// Leaf wraps a single token as a terminal parse tree node.
func Leaf(t lexer.Token) *Node {
	return &Node{Token: &t}
}

// NonTerminalNode starts an interior node for the given non-terminal kind. Children
// are appended by the parser as it matches each symbol of the chosen production.
func NonTerminalNode(kind symbol.NonTerminalKind) *Node {
	return &Node{NonTerminal: kind}
}

// IsTerminal reports whether n is a leaf node wrapping a token.
func (n *Node) IsTerminal() bool {
	return n.Token != nil
}
