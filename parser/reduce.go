package parser

import (
	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/parsetree"
)

// Reduce collapses a concrete parse tree into the abstract Evaluable tree: punctuator
// leaves (parentheses, brackets, commas) are dropped, and any node left with exactly
// one surviving child unwraps to that child rather than being kept as its own
// Evaluable. symbol.Block is the one non-terminal kind that always wraps, even with a
// single child, so a one-statement program still has a consistent shape for the
// evaluator to dispatch on.
func Reduce(node *parsetree.Node) ast.Node {
	if node.IsTerminal() {
		return node.Token.Representable
	}

	var kept []*parsetree.Node
	for _, child := range node.Children {
		if child.IsTerminal() && ast.IsPunctuator(child.Token.Representable) {
			continue
		}
		kept = append(kept, child)
	}

	kind, _ := ast.EvaluableKindFor(node.NonTerminal)

	if len(kept) == 1 && !ast.AlwaysWraps(node.NonTerminal) {
		return Reduce(kept[0])
	}

	children := make([]ast.Node, len(kept))
	for i, child := range kept {
		children[i] = Reduce(child)
	}

	return &ast.Evaluable{Kind: kind, Children: children}
}
