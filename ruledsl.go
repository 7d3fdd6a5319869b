package ruledsl

import (
	"context"

	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/env"
	"github.com/blizzy78/ruledsl/evaluator"
	"github.com/blizzy78/ruledsl/helpers"
	"github.com/blizzy78/ruledsl/lexer"
	"github.com/blizzy78/ruledsl/parser"
)

// DSL parses, validates, and executes rule input. The lexer catalog, grammar, and start
// symbol are all overridable through Option, letting a host extend the surface language
// with its own terminal kinds, productions, and Action types without forking this
// package.
type DSL struct {
	lex   *lexer.Lexer
	parse *parser.Parser
	eval  evaluator.Evaluator
}

// Option configures a DSL under construction.
type Option func(*DSL)

// WithLexer overrides the Lexer used to tokenize input. The default is a Lexer built
// from lexer.New() with no options, i.e. the unmodified base catalog.
func WithLexer(l *lexer.Lexer) Option {
	return func(d *DSL) {
		d.lex = l
	}
}

// WithParser overrides the Parser used to expand tokens into a parse tree. The default
// is parser.New() with no options, i.e. grammar.Base() starting at symbol.Block. A host
// that wants a non-Block start symbol, or a grammar with productions added or replaced
// via grammar.Grammar.With, builds its own *parser.Parser and passes it here.
func WithParser(p *parser.Parser) Option {
	return func(d *DSL) {
		d.parse = p
	}
}

// New returns a DSL configured by opts.
func New(opts ...Option) (*DSL, error) {
	d := &DSL{}

	for _, opt := range opts {
		opt(d)
	}

	if d.lex == nil {
		l, err := lexer.New()
		if err != nil {
			return nil, err
		}
		d.lex = l
	}

	if d.parse == nil {
		d.parse = parser.New()
	}

	return d, nil
}

// ValidationResult is the outcome of Validate: IsValid is true only if the input parsed
// and every action in it accepted its (already-evaluated) argument list. Actions lists
// every action found in the tree, valid or not, for a host that wants to inspect them
// further; Err carries the first syntax or validation error encountered, if any.
type ValidationResult struct {
	IsValid bool
	Actions []*ast.Evaluable
	Err     error
}

// construct runs input through the lexer, parser, and reducer, and confirms the result
// is an Evaluable - the shape every subsequent step assumes. A non-Block start symbol
// whose reduction collapses to a bare Representable (a standalone Operand, say) fails
// here with a validation error, per the facade contract: every construct result is an
// Evaluable or an error, never a bare Representable.
func (d *DSL) construct(input string) (*ast.Evaluable, error) {
	tokens, err := d.lex.Tokenize(input)
	if err != nil {
		return nil, err
	}

	tree, err := d.parse.Parse(tokens)
	if err != nil {
		return nil, err
	}

	reduced := parser.Reduce(tree)

	evaluable, ok := reduced.(*ast.Evaluable)
	if !ok {
		return nil, dslerror.Newf(dslerror.Validation, "%T is not an evaluable", reduced)
	}

	return evaluable, nil
}

// Validate runs input through the lexer, parser, and reducer, then walks the resulting
// tree collecting every action and checking its arguments with ValidateArgs. It never
// runs an action's Execute, and never panics: syntax and validation failures are
// reported through the returned ValidationResult rather than as an error return, so a
// host can present IsValid/Err directly to a rule author without a type switch.
//
// Variables referenced by an action's arguments are resolved against env.Permissive
// rather than a real environment, since Validate has no environment of its own to draw
// on: a rule that refers to a variable is valid regardless of what that variable
// eventually holds, so ValidateArgs sees nil for any variable reference rather than a
// resolution failure.
func (d *DSL) Validate(input string) ValidationResult {
	tree, err := d.construct(input)
	if err != nil {
		return ValidationResult{Err: err}
	}

	actions := collectActions(tree)

	for _, action := range actions {
		if err := d.validateAction(action); err != nil {
			return ValidationResult{Actions: actions, Err: err}
		}
	}

	return ValidationResult{IsValid: true, Actions: actions}
}

// Execute runs input through the lexer, parser, and reducer, then evaluates the
// resulting tree against e, returning the results of whichever actions fired. Unlike
// Validate, Execute does not call ValidateArgs again; a host that skips Validate and
// calls Execute directly on untrusted input gets whatever error Execute's own action
// Execute call returns instead.
func (d *DSL) Execute(ctx context.Context, input string, e env.Environment) ([]interface{}, error) {
	tree, err := d.construct(input)
	if err != nil {
		return nil, err
	}

	return d.eval.Evaluate(ctx, tree, e)
}

// collectActions recursively gathers every ActionEvaluable under n, the way a rule's
// actions are discovered for Validate. It does not recurse into an ActionEvaluable's own
// children: an action's arguments cannot themselves contain a nested action, so there is
// nothing further to find there.
func collectActions(n *ast.Evaluable) []*ast.Evaluable {
	var actions []*ast.Evaluable

	for _, child := range n.Children {
		c, ok := child.(*ast.Evaluable)
		if !ok {
			continue
		}

		if c.Kind == ast.ActionEvaluable {
			actions = append(actions, c)
			continue
		}

		actions = append(actions, collectActions(c)...)
	}

	return actions
}

func (d *DSL) validateAction(action *ast.Evaluable) error {
	if len(action.Children) == 0 {
		return dslerror.Newf(dslerror.Validation, "action has no representable")
	}

	act, ok := action.Children[0].(ast.Action)
	if !ok {
		return dslerror.Newf(dslerror.Validation, "%T is not a valid action", action.Children[0])
	}

	args, err := d.eval.Args(context.Background(), action, env.Permissive)
	if err != nil {
		return dslerror.Newf(dslerror.Validation, "could not evaluate arguments of %T: %w", act, err)
	}

	if !act.ValidateArgs(args...) {
		return dslerror.Newf(dslerror.Validation, "%T rejected its arguments %s", act, helpers.Format(args))
	}

	return nil
}
