package ruledsl

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/env"
	"github.com/blizzy78/ruledsl/grammar"
	"github.com/blizzy78/ruledsl/lexer"
	"github.com/blizzy78/ruledsl/parser"
	"github.com/blizzy78/ruledsl/symbol"
)

func TestDSL_ExecuteIfElse(t *testing.T) {
	is := is.New(t)

	d, err := New()
	is.NoErr(err)

	out, err := d.Execute(context.Background(), `IF x > 1 THEN RETURN(1) ELSE RETURN(0)`, env.MapEnvironment{"x": int64(5)})
	is.NoErr(err)
	is.Equal(out, []interface{}{int64(1)})

	out, err = d.Execute(context.Background(), `IF x > 1 THEN RETURN(1) ELSE RETURN(0)`, env.MapEnvironment{"x": int64(0)})
	is.NoErr(err)
	is.Equal(out, []interface{}{int64(0)})
}

func TestDSL_ExecuteNoMatchIsEmpty(t *testing.T) {
	is := is.New(t)

	d, err := New()
	is.NoErr(err)

	out, err := d.Execute(context.Background(), `IF FALSE THEN RETURN(1)`, env.Empty)
	is.NoErr(err)
	is.Equal(len(out), 0)
}

func TestDSL_ExecuteUnboundVariableIsRuntimeError(t *testing.T) {
	is := is.New(t)

	d, err := New()
	is.NoErr(err)

	_, err = d.Execute(context.Background(), `IF x THEN RETURN(1)`, env.Empty)
	is.True(err != nil)
	is.True(dslerror.Is(err, dslerror.Runtime))
}

func TestDSL_ValidateValid(t *testing.T) {
	is := is.New(t)

	d, err := New()
	is.NoErr(err)

	// RETURN's argument is always a bare Operand, never an Expression, so a negative
	// number literal (which the lexer has no token for anyway) could not appear here.
	result := d.Validate(`IF x > 1 THEN RETURN(1) ELIF x < 0 THEN RETURN(99) ELSE RETURN(0)`)
	is.True(result.IsValid)
	is.NoErr(result.Err)
	is.Equal(len(result.Actions), 3)
}

func TestDSL_ValidateSyntaxError(t *testing.T) {
	is := is.New(t)

	d, err := New()
	is.NoErr(err)

	result := d.Validate(`IF TRUE THEN`)
	is.True(!result.IsValid)
	is.True(dslerror.Is(result.Err, dslerror.Syntax))
}

func TestDSL_ValidateDoesNotRequireEnvironment(t *testing.T) {
	is := is.New(t)

	d, err := New()
	is.NoErr(err)

	// A rule that only ever references a variable (never a literal whose shape
	// ValidateArgs could reject) must still validate, since env.Permissive resolves
	// every name rather than failing the lookup.
	result := d.Validate(`IF TRUE THEN RETURN(some_var)`)
	is.True(result.IsValid)
}

// countingAction is a host Action implemented outside the ast package, embedding
// ast.ReturnAction purely to inherit the sealed Representable marker methods; its own
// ValidateArgs/Execute shadow the embedded ones.
type countingAction struct {
	ast.ReturnAction
	calls *int
}

func newCountingAction(calls *int) countingAction {
	return countingAction{calls: calls}
}

func (a countingAction) ValidateArgs(args ...interface{}) bool {
	return len(args) == 1
}

func (a countingAction) Execute(args ...interface{}) (interface{}, error) {
	*a.calls++
	return a.ReturnAction.Execute(args...)
}

func TestDSL_CustomActionViaGrammarExtension(t *testing.T) {
	is := is.New(t)

	const logLiteral symbol.TerminalKind = "LogLiteral"

	calls := 0

	// "@LOG(" is a spelling no base terminal recognizes (a lone "@" would otherwise be
	// an InvalidSymbol). WithInclusions places it ahead of the base catalog, so it is
	// tried first at every position.
	l, err := lexer.New(lexer.WithInclusions(lexer.TerminalDef{
		Kind:  logLiteral,
		Regex: `@LOG\(`,
		Factory: func(string) (ast.Representable, error) {
			return newCountingAction(&calls), nil
		},
	}))
	is.NoErr(err)

	base := grammar.Base()
	actionProds := append(append([]grammar.Production{}, base[symbol.Action]...),
		grammar.New(logLiteral, symbol.Operand, symbol.RightParenthesisLiteral),
		grammar.New(logLiteral, symbol.Operand, symbol.ActionArg),
	)
	g := base.With(symbol.Action, actionProds...)

	p := parser.New(parser.WithGrammar(g))

	d, err := New(WithLexer(l), WithParser(p))
	is.NoErr(err)

	result := d.Validate(`IF TRUE THEN @LOG(1, 2)`)
	is.True(!result.IsValid)
	is.True(dslerror.Is(result.Err, dslerror.Validation))

	result = d.Validate(`IF TRUE THEN @LOG(1)`)
	is.True(result.IsValid)

	out, err := d.Execute(context.Background(), `IF TRUE THEN @LOG(1)`, env.Empty)
	is.NoErr(err)
	is.Equal(out, []interface{}{int64(1)})
	is.Equal(calls, 1)
}
