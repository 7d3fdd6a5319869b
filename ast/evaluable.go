package ast

import "github.com/blizzy78/ruledsl/symbol"

// EvaluableKind tags the shape of an Evaluable node, determining how evaluator.Evaluate
// dispatches on it.
type EvaluableKind string

const (
	// BlockEvaluable's first child is an IfStatementEvaluable; a second child, if
	// present, is a nested BlockEvaluable holding the remaining statements (the grammar's
	// right-recursive `Block := IfStatement Block`).
	BlockEvaluable EvaluableKind = "Block"

	// IfStatementEvaluable's children are, in order: the If Keyword, the condition (an
	// Evaluable or a bare Operand), the Then Keyword, the ActionEvaluable, and optionally
	// one trailing ElifStatementEvaluable.
	IfStatementEvaluable EvaluableKind = "IfStatement"

	// ElifStatementEvaluable has either the same shape as IfStatementEvaluable (led by
	// the Elif Keyword, its optional fifth child being the next ElifStatementEvaluable in
	// the chain) or, for an ELSE clause, exactly two children: the Else Keyword and the
	// ActionEvaluable.
	ElifStatementEvaluable EvaluableKind = "ElifStatement"

	// ActionEvaluable's first child is an Action; any remaining children are its
	// (possibly nested) argument Evaluables.
	ActionEvaluable EvaluableKind = "Action"

	// ActionArgEvaluable is the right-recursive tail of an action's argument list.
	ActionArgEvaluable EvaluableKind = "ActionArg"

	// ListEvaluable's children together make up a literal list's elements.
	ListEvaluable EvaluableKind = "List"

	// ListArgEvaluable is the right-recursive tail of a list literal's elements.
	ListArgEvaluable EvaluableKind = "ListArg"

	// ExpressionEvaluable's children interleave Operand/Operator Representables in
	// the shape the two-queue shunt algorithm expects.
	ExpressionEvaluable EvaluableKind = "Expression"
)

// Evaluable is the reduced, abstract counterpart of a concrete parse tree node: the
// reducer (see parser.Reduce) drops punctuator leaves and collapses single-child chains,
// leaving only the nodes that carry evaluation meaning.
type Evaluable struct {
	Kind     EvaluableKind
	Children []Node
}

func (*Evaluable) node() {}

var _ Node = (*Evaluable)(nil)

// evaluableKindByNonTerminal maps each non-terminal that survives reduction to its
// EvaluableKind. ConditionExpr, ConditionTerm, ConditionFactor, Condition, Expression,
// Term, Factor, and Operand all fold into ExpressionEvaluable: they share the same flat
// operand/operator evaluation contract once reduced, so keeping them as distinct kinds
// downstream would only duplicate the same switch case eight times over.
var evaluableKindByNonTerminal = map[symbol.NonTerminalKind]EvaluableKind{
	symbol.Block:           BlockEvaluable,
	symbol.IfStatement:     IfStatementEvaluable,
	symbol.ElifStatement:   ElifStatementEvaluable,
	symbol.Action:          ActionEvaluable,
	symbol.ActionArg:       ActionArgEvaluable,
	symbol.List:            ListEvaluable,
	symbol.ListArg:         ListArgEvaluable,
	symbol.ConditionExpr:   ExpressionEvaluable,
	symbol.ConditionTerm:   ExpressionEvaluable,
	symbol.ConditionFactor: ExpressionEvaluable,
	symbol.Condition:       ExpressionEvaluable,
	symbol.Expression:      ExpressionEvaluable,
	symbol.Term:            ExpressionEvaluable,
	symbol.Factor:          ExpressionEvaluable,
	symbol.Operand:         ExpressionEvaluable,
}

// EvaluableKindFor reports the EvaluableKind a reduced node of the given non-terminal
// kind should carry, and whether the kind is in the table at all. Whether a node of
// that kind wraps a single surviving child is reported separately, by AlwaysWraps.
func EvaluableKindFor(kind symbol.NonTerminalKind) (EvaluableKind, bool) {
	k, ok := evaluableKindByNonTerminal[kind]
	return k, ok
}

// AlwaysWraps reports whether a node of this non-terminal kind is wrapped in an
// Evaluable even when it reduces to a single child, rather than being unwrapped to that
// child directly. Only Block has this property: a program of exactly one statement is
// still a Block, never bare IfStatement, so evaluator.Evaluate always has one entry
// point shape to dispatch on.
func AlwaysWraps(kind symbol.NonTerminalKind) bool {
	return kind == symbol.Block
}
