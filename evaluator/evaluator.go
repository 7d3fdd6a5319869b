package evaluator

import (
	"context"

	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/env"
)

// noMatch is the sentinel evalIfLike returns for an IF/ELIF branch that did not fire and
// has no ELSE to fall back to. It stands in for the source material's dataclasses.MISSING:
// a dedicated type rather than nil, since an action can legitimately return nil itself
// (e.g. RETURN(None)) and that must be told apart from "no branch matched".
type noMatch struct{}

// NoMatch is the result of an IfStatementEvaluable or ElifStatementEvaluable whose
// condition was false and which has no ELSE branch to fall back to. evalBlock drops it
// rather than reporting it as one of the block's outputs.
var NoMatch interface{} = noMatch{}

// IsNoMatch reports whether v is the NoMatch sentinel.
func IsNoMatch(v interface{}) bool {
	_, ok := v.(noMatch)
	return ok
}

// Evaluator reduces a reduced ast.Evaluable tree to the values its actions produce.
// Unlike copper's Evaluator, it carries no mutable per-walk state of its own: a rule has
// no loops, no assignment, and no output buffer to accumulate into, so the same
// Evaluator can run concurrent Evaluate calls safely.
type Evaluator struct{}

// Evaluate walks the root Block node n, running every IF/ELIF/ELSE statement in order
// and collecting the results of the actions that fired. ctx is checked once per
// top-level statement, so a long rule can be cancelled between statements even though no
// single statement's evaluation is itself interruptible. e resolves VariableOperand
// references; env.Empty is fine for a rule that uses none.
func (ev *Evaluator) Evaluate(ctx context.Context, n ast.Node, e env.Environment) ([]interface{}, error) {
	block, ok := n.(*ast.Evaluable)
	if !ok || block.Kind != ast.BlockEvaluable {
		return nil, dslerror.Newf(dslerror.Runtime, "%T is not a Block", n)
	}
	return ev.evalBlock(ctx, block, e)
}

func (ev *Evaluator) evalBlock(ctx context.Context, block *ast.Evaluable, e env.Environment) ([]interface{}, error) {
	var out []interface{}

	for _, child := range block.Children {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		statement, ok := child.(*ast.Evaluable)
		if !ok {
			return out, dslerror.Newf(dslerror.Runtime, "unexpected statement node %T in block", child)
		}

		switch statement.Kind {
		case ast.BlockEvaluable:
			nested, err := ev.evalBlock(ctx, statement, e)
			if err != nil {
				return out, err
			}
			out = append(out, nested...)

		case ast.IfStatementEvaluable:
			result, err := ev.evalIfLike(ctx, statement.Children, e)
			if err != nil {
				return out, err
			}
			if !IsNoMatch(result) {
				out = append(out, result)
			}

		default:
			return out, dslerror.Newf(dslerror.Runtime, "unexpected statement kind %s in block", statement.Kind)
		}
	}

	return out, nil
}

// evalIfLike evaluates the shared shape of an IfStatementEvaluable and
// ElifStatementEvaluable: both branch on a condition then either run their THEN action,
// fall through to a trailing ELIF, or (ElifStatementEvaluable only) run an ELSE action
// unconditionally.
func (ev *Evaluator) evalIfLike(ctx context.Context, children []ast.Node, e env.Environment) (interface{}, error) {
	switch len(children) {
	case 2:
		// ElseKeyword, action.
		return ev.eval(ctx, children[1], e)

	case 4:
		// Keyword, condition, ThenKeyword, action.
		matched, err := ev.conditionTrue(ctx, children[1], e)
		if err != nil {
			return nil, err
		}
		if !matched {
			return NoMatch, nil
		}
		return ev.eval(ctx, children[3], e)

	case 5:
		// Keyword, condition, ThenKeyword, action, ElifStatement.
		matched, err := ev.conditionTrue(ctx, children[1], e)
		if err != nil {
			return nil, err
		}
		if matched {
			return ev.eval(ctx, children[3], e)
		}
		next, ok := children[4].(*ast.Evaluable)
		if !ok {
			return nil, dslerror.Newf(dslerror.Runtime, "%T is not an ElifStatement", children[4])
		}
		return ev.evalIfLike(ctx, next.Children, e)

	default:
		return nil, dslerror.Newf(dslerror.Runtime, "if/elif statement has an unexpected shape (%d children)", len(children))
	}
}

func (ev *Evaluator) conditionTrue(ctx context.Context, cond ast.Node, e env.Environment) (bool, error) {
	v, err := ev.eval(ctx, cond, e)
	if err != nil {
		return false, err
	}
	return ast.Truthy(v), nil
}

// eval is the generic dispatch used for every node that is not a Block or an
// IfStatement/ElifStatement: a leaf Operand resolves to its true value directly, and
// every other node is an *ast.Evaluable dispatched on its Kind.
func (ev *Evaluator) eval(ctx context.Context, n ast.Node, e env.Environment) (interface{}, error) {
	if operand, ok := n.(ast.Operand); ok {
		return operand.TrueValue(e)
	}

	node, ok := n.(*ast.Evaluable)
	if !ok {
		return nil, dslerror.Newf(dslerror.Runtime, "cannot evaluate node of type %T", n)
	}

	switch node.Kind {
	case ast.BlockEvaluable:
		out, err := ev.evalBlock(ctx, node, e)
		if err != nil {
			return nil, err
		}
		return out, nil

	case ast.IfStatementEvaluable, ast.ElifStatementEvaluable:
		return ev.evalIfLike(ctx, node.Children, e)

	case ast.ActionEvaluable:
		return ev.evalAction(ctx, node, e)

	case ast.ListEvaluable:
		return ev.buildSequence(ctx, node.Children, e)

	case ast.ActionArgEvaluable, ast.ListArgEvaluable:
		return ev.flattenSequence(ctx, node.Children, e)

	case ast.ExpressionEvaluable:
		return ev.evalExpression(ctx, node, e)

	default:
		return nil, dslerror.Newf(dslerror.Runtime, "unknown evaluable kind %s", node.Kind)
	}
}

// evalAction runs the Action that is an ActionEvaluable's first child against the
// resolved values of its remaining children. It does not call ValidateArgs: validation
// is a dedicated up-front tree walk the facade's Validate runs once, not a check
// repeated on every Execute.
func (ev *Evaluator) evalAction(ctx context.Context, node *ast.Evaluable, e env.Environment) (interface{}, error) {
	if len(node.Children) == 0 {
		return nil, dslerror.Newf(dslerror.Runtime, "action has no representable")
	}

	action, ok := node.Children[0].(ast.Action)
	if !ok {
		return nil, dslerror.Newf(dslerror.Runtime, "%T is not a valid action", node.Children[0])
	}

	args, err := ev.buildSequence(ctx, node.Children[1:], e)
	if err != nil {
		return nil, err
	}

	return action.Execute(args...)
}

// Args evaluates an ActionEvaluable's argument children against e without invoking the
// action itself. A DSL facade's Validate calls this ahead of ValidateArgs, typically
// with env.Permissive rather than a real environment, since the variables a rule refers
// to are not necessarily known yet at validation time.
func (ev *Evaluator) Args(ctx context.Context, action ast.Node, e env.Environment) ([]interface{}, error) {
	node, ok := action.(*ast.Evaluable)
	if !ok || node.Kind != ast.ActionEvaluable {
		return nil, dslerror.Newf(dslerror.Runtime, "%T is not an Action", action)
	}
	return ev.buildSequence(ctx, node.Children[1:], e)
}

// buildSequence builds the argument list for an ActionEvaluable or the element list for
// a ListEvaluable: an Operand contributes its true value, a nested ListEvaluable
// contributes its own evaluation as a single (unflattened) element, and anything else -
// the right-recursive ActionArg/ListArg tail - has its own evaluation flattened in.
func (ev *Evaluator) buildSequence(ctx context.Context, children []ast.Node, e env.Environment) ([]interface{}, error) {
	var out []interface{}

	for _, child := range children {
		if operand, ok := child.(ast.Operand); ok {
			v, err := operand.TrueValue(e)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			continue
		}

		node, ok := child.(*ast.Evaluable)
		if !ok {
			return nil, dslerror.Newf(dslerror.Runtime, "unexpected argument node %T", child)
		}

		if node.Kind == ast.ListEvaluable {
			v, err := ev.buildSequence(ctx, node.Children, e)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			continue
		}

		v, err := ev.eval(ctx, node, e)
		if err != nil {
			return nil, err
		}
		flat, ok := v.([]interface{})
		if !ok {
			return nil, dslerror.Newf(dslerror.Runtime, "%s did not evaluate to a sequence", node.Kind)
		}
		out = append(out, flat...)
	}

	return out, nil
}

// flattenSequence builds the element list for an ActionArgEvaluable or ListArgEvaluable:
// unlike buildSequence, a nested list is never kept intact, it is flattened in along
// with everything else. This is the source material's own asymmetry between
// EvaluableList/EvaluableAction and EvaluableListArg/EvaluableActionArg, not an
// inconsistency introduced here.
func (ev *Evaluator) flattenSequence(ctx context.Context, children []ast.Node, e env.Environment) ([]interface{}, error) {
	var out []interface{}

	for _, child := range children {
		if operand, ok := child.(ast.Operand); ok {
			v, err := operand.TrueValue(e)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			continue
		}

		v, err := ev.eval(ctx, child, e)
		if err != nil {
			return nil, err
		}
		flat, ok := v.([]interface{})
		if !ok {
			return nil, dslerror.Newf(dslerror.Runtime, "%T did not evaluate to a sequence", child)
		}
		out = append(out, flat...)
	}

	return out, nil
}

// evalExpression runs the two-queue shunt algorithm over an ExpressionEvaluable's
// children: operators queue up until enough operands are available to apply the one at
// the front, unary operators consuming the most recently produced operand and binary
// operators consuming the two oldest ones still waiting. The grammar's own nesting
// already encodes operator precedence (see grammar.Base), so this algorithm never needs
// to compare precedences itself; it only ever applies the operator it is currently
// holding to the operands currently available.
func (ev *Evaluator) evalExpression(ctx context.Context, node *ast.Evaluable, e env.Environment) (interface{}, error) {
	var operators []ast.Operator
	var operands []interface{}

	for _, child := range node.Children {
		switch item := child.(type) {
		case ast.Operator:
			operators = append(operators, item)

		case ast.Operand:
			v, err := item.TrueValue(e)
			if err != nil {
				return nil, err
			}
			operands = append(operands, v)

		default:
			v, err := ev.eval(ctx, child, e)
			if err != nil {
				return nil, err
			}
			operands = append(operands, v)
		}

		if len(operators) == 0 {
			continue
		}

		if len(operands) > 0 {
			if unary, ok := operators[0].(ast.UnaryOperator); ok {
				x := operands[len(operands)-1]
				operands = operands[:len(operands)-1]

				result, err := unary.Evaluate(x)
				if err != nil {
					return nil, err
				}

				operands = append(operands, result)
				operators = operators[1:]
				continue
			}
		}

		if len(operands) > 1 {
			if binary, ok := operators[0].(ast.BinaryOperator); ok {
				x, y := operands[0], operands[1]
				operands = operands[2:]

				result, err := binary.Evaluate(x, y)
				if err != nil {
					return nil, err
				}

				operands = append(operands, result)
				operators = operators[1:]
			}
		}
	}

	if len(operators) != 0 {
		return nil, dslerror.Newf(dslerror.Runtime, "evaluation left %d unused operator(s)", len(operators))
	}
	if len(operands) != 1 {
		return nil, dslerror.Newf(dslerror.Runtime, "evaluation did not collapse to a single value")
	}

	return operands[0], nil
}
