package parser

import (
	"testing"

	"github.com/matryer/is"

	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/lexer"
)

func reduceInput(t *testing.T, input string) ast.Node {
	t.Helper()

	is := is.New(t)

	l, err := lexer.New()
	is.NoErr(err)

	tokens, err := l.Tokenize(input)
	is.NoErr(err)

	p := New()
	tree, err := p.Parse(tokens)
	is.NoErr(err)

	return Reduce(tree)
}

func TestParse_SimpleIfThen(t *testing.T) {
	is := is.New(t)

	tree := reduceInput(t, `IF TRUE THEN RETURN(1)`)

	block, ok := tree.(*ast.Evaluable)
	is.True(ok)
	is.Equal(block.Kind, ast.BlockEvaluable)
	is.Equal(len(block.Children), 1)

	ifStmt, ok := block.Children[0].(*ast.Evaluable)
	is.True(ok)
	is.Equal(ifStmt.Kind, ast.IfStatementEvaluable)

	// IF, condition, THEN, action: no trailing ELIF/ELSE.
	is.Equal(len(ifStmt.Children), 4)
	is.Equal(ifStmt.Children[0], ast.NewKeyword(ast.IfKeyword))

	cond, ok := ifStmt.Children[1].(ast.BoolOperand)
	is.True(ok)
	is.Equal(cond.Value, true)

	is.Equal(ifStmt.Children[2], ast.NewKeyword(ast.ThenKeyword))

	action, ok := ifStmt.Children[3].(*ast.Evaluable)
	is.True(ok)
	is.Equal(action.Kind, ast.ActionEvaluable)
	is.Equal(len(action.Children), 2)
	is.Equal(action.Children[0], ast.NewReturnAction())

	arg, ok := action.Children[1].(ast.IntOperand)
	is.True(ok)
	is.Equal(arg.Value, int64(1))
}

func TestParse_IfElifElse(t *testing.T) {
	is := is.New(t)

	tree := reduceInput(t, `IF x THEN RETURN(1) ELIF y THEN RETURN(2) ELSE RETURN(3)`)

	block := tree.(*ast.Evaluable)
	ifStmt := block.Children[0].(*ast.Evaluable)

	// IF, condition, THEN, action, ElifStatement tail.
	is.Equal(len(ifStmt.Children), 5)

	elifStmt, ok := ifStmt.Children[4].(*ast.Evaluable)
	is.True(ok)
	is.Equal(elifStmt.Kind, ast.ElifStatementEvaluable)
	is.Equal(len(elifStmt.Children), 5)
	is.Equal(elifStmt.Children[0], ast.NewKeyword(ast.ElifKeyword))

	elseStmt, ok := elifStmt.Children[4].(*ast.Evaluable)
	is.True(ok)
	is.Equal(elseStmt.Kind, ast.ElifStatementEvaluable)
	// ELSE, action: no condition, no THEN, no further tail.
	is.Equal(len(elseStmt.Children), 2)
	is.Equal(elseStmt.Children[0], ast.NewKeyword(ast.ElseKeyword))
}

// Arithmetic and attribute/indexing access only appear in condition position: Action's
// own productions take a bare Operand, never a Factor or Expression, so RETURN(...)
// can only ever hold literals, variables, or list literals directly.

func TestParse_ArithmeticPrecedence(t *testing.T) {
	is := is.New(t)

	// 1 + 2 * 3 should nest so that 2 * 3 binds tighter than the +.
	tree := reduceInput(t, `IF 1 + 2 * 3 == 7 THEN RETURN(1)`)

	block := tree.(*ast.Evaluable)
	ifStmt := block.Children[0].(*ast.Evaluable)

	cond, ok := ifStmt.Children[1].(*ast.Evaluable)
	is.True(ok)
	is.Equal(cond.Kind, ast.ExpressionEvaluable)
	is.Equal(len(cond.Children), 3)
	is.Equal(cond.Children[1], ast.NewEqualOperator())

	seven, ok := cond.Children[2].(ast.IntOperand)
	is.True(ok)
	is.Equal(seven.Value, int64(7))

	sum, ok := cond.Children[0].(*ast.Evaluable)
	is.True(ok)
	is.Equal(sum.Kind, ast.ExpressionEvaluable)
	is.Equal(len(sum.Children), 3)

	one, ok := sum.Children[0].(ast.IntOperand)
	is.True(ok)
	is.Equal(one.Value, int64(1))

	is.Equal(sum.Children[1], ast.NewPlusOperator())

	mul, ok := sum.Children[2].(*ast.Evaluable)
	is.True(ok)
	is.Equal(mul.Kind, ast.ExpressionEvaluable)
	is.Equal(len(mul.Children), 3)
	is.Equal(mul.Children[1], ast.NewMultOperator())
}

func TestParse_Parentheses(t *testing.T) {
	is := is.New(t)

	// Parentheses force (1 + 2) to reduce ahead of the * 3, unlike the unparenthesized
	// precedence test above: a parenthesized Factor collapses straight to its inner
	// Condition's own reduction, with no trace of the parentheses left in the tree.
	tree := reduceInput(t, `IF (1 + 2) * 3 == 9 THEN RETURN(1)`)

	block := tree.(*ast.Evaluable)
	ifStmt := block.Children[0].(*ast.Evaluable)

	cond := ifStmt.Children[1].(*ast.Evaluable)
	is.Equal(len(cond.Children), 3)

	mul, ok := cond.Children[0].(*ast.Evaluable)
	is.True(ok)
	is.Equal(mul.Kind, ast.ExpressionEvaluable)
	is.Equal(len(mul.Children), 3)
	is.Equal(mul.Children[1], ast.NewMultOperator())

	sum, ok := mul.Children[0].(*ast.Evaluable)
	is.True(ok)
	is.Equal(sum.Kind, ast.ExpressionEvaluable)
	is.Equal(len(sum.Children), 3)
	is.Equal(sum.Children[1], ast.NewPlusOperator())
}

func TestParse_ListLiteral(t *testing.T) {
	is := is.New(t)

	tree := reduceInput(t, `IF TRUE THEN RETURN([1, 2, 3])`)

	block := tree.(*ast.Evaluable)
	ifStmt := block.Children[0].(*ast.Evaluable)
	action := ifStmt.Children[3].(*ast.Evaluable)

	// The list is kept nested as a single action argument, not flattened.
	is.Equal(len(action.Children), 2)

	list, ok := action.Children[1].(*ast.Evaluable)
	is.True(ok)
	is.Equal(list.Kind, ast.ListEvaluable)

	// The first element sits directly in List; 2 and 3 are reached through a nested
	// ListArg tail, the same right-recursive shape ActionArg has.
	is.Equal(len(list.Children), 2)

	one, ok := list.Children[0].(ast.IntOperand)
	is.True(ok)
	is.Equal(one.Value, int64(1))

	tail, ok := list.Children[1].(*ast.Evaluable)
	is.True(ok)
	is.Equal(tail.Kind, ast.ListArgEvaluable)
	is.Equal(len(tail.Children), 2)
}

func TestParse_MultipleActionArgs(t *testing.T) {
	is := is.New(t)

	tree := reduceInput(t, `IF TRUE THEN RETURN(1, 2, 3)`)

	block := tree.(*ast.Evaluable)
	ifStmt := block.Children[0].(*ast.Evaluable)
	action := ifStmt.Children[3].(*ast.Evaluable)

	// ReturnAction, then the first arg, then a nested ActionArg tail for "2, 3".
	is.Equal(len(action.Children), 3)

	tail, ok := action.Children[2].(*ast.Evaluable)
	is.True(ok)
	is.Equal(tail.Kind, ast.ActionArgEvaluable)
	is.Equal(len(tail.Children), 2)
}

func TestParse_VariableIndexingAndAttribute(t *testing.T) {
	is := is.New(t)

	// Attribute/indexing access is a Factor construct, reachable only from a
	// condition, never from a RETURN(...) argument (see the note above).
	tree := reduceInput(t, `IF x[1].bar THEN RETURN(1)`)

	block := tree.(*ast.Evaluable)
	ifStmt := block.Children[0].(*ast.Evaluable)

	factor, ok := ifStmt.Children[1].(*ast.Evaluable)
	is.True(ok)
	is.Equal(factor.Kind, ast.ExpressionEvaluable)
	is.Equal(len(factor.Children), 3)

	variable, ok := factor.Children[0].(ast.VariableOperand)
	is.True(ok)
	is.Equal(variable.Name, "x")

	_, ok = factor.Children[1].(ast.IndexingOperator)
	is.True(ok)

	_, ok = factor.Children[2].(ast.AttributeOperator)
	is.True(ok)
}

func TestParse_SyntaxError(t *testing.T) {
	is := is.New(t)

	l, err := lexer.New()
	is.NoErr(err)

	tokens, err := l.Tokenize(`IF TRUE THEN`)
	is.NoErr(err)

	p := New()
	_, err = p.Parse(tokens)
	is.True(err != nil)
	is.True(dslerror.Is(err, dslerror.Syntax))
}

func TestParse_TrailingGarbageIsSyntaxError(t *testing.T) {
	is := is.New(t)

	l, err := lexer.New()
	is.NoErr(err)

	tokens, err := l.Tokenize(`IF TRUE THEN RETURN(1) RETURN(2)`)
	is.NoErr(err)

	p := New()
	_, err = p.Parse(tokens)
	is.True(err != nil)
	is.True(dslerror.Is(err, dslerror.Syntax))
}
