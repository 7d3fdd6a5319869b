package lexer

import (
	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/symbol"
)

// BaseCatalog returns the default terminal catalog, in priority order: multi-character
// operators and keyword-prefixed actions (RETURN(, COUNT() before the single-character
// or bare-word symbols they would otherwise shadow, and InvalidSymbol last as the
// catch-all for anything left over. Regexes are ordinary RE2 syntax; named groups are
// derived from each Kind at compile time (see Lexer.New), not written here.
func BaseCatalog() []TerminalDef {
	return []TerminalDef{
		{
			Kind:  symbol.IndexingLiteral,
			Regex: `\[\d+\]`,
			Factory: func(lexeme string) (ast.Representable, error) {
				return ast.NewIndexingOperator(lexeme)
			},
		},
		{
			Kind:  symbol.LeftSquareBracketLiteral,
			Regex: `\[`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewPunctuator(ast.LeftSquareBracket), nil
			},
		},
		{
			Kind:  symbol.RightSquareBracketLiteral,
			Regex: `\]`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewPunctuator(ast.RightSquareBracket), nil
			},
		},
		{
			Kind:  symbol.CommaLiteral,
			Regex: `,`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewPunctuator(ast.Comma), nil
			},
		},
		{
			Kind:  symbol.ReturnLiteral,
			Regex: `RETURN\(`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewReturnAction(), nil
			},
		},
		{
			Kind:  symbol.IfLiteral,
			Regex: `IF`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewKeyword(ast.IfKeyword), nil
			},
		},
		{
			Kind:  symbol.ElifLiteral,
			Regex: `ELIF`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewKeyword(ast.ElifKeyword), nil
			},
		},
		{
			Kind:  symbol.ThenLiteral,
			Regex: `THEN`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewKeyword(ast.ThenKeyword), nil
			},
		},
		{
			Kind:  symbol.ElseLiteral,
			Regex: `ELSE`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewKeyword(ast.ElseKeyword), nil
			},
		},
		{
			Kind:  symbol.CountLiteral,
			Regex: `COUNT\(`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewCountFunction(), nil
			},
		},
		{
			Kind:  symbol.DivLiteral,
			Regex: `/`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewDivOperator(), nil
			},
		},
		{
			Kind:  symbol.MultLiteral,
			Regex: `\*`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewMultOperator(), nil
			},
		},
		{
			Kind:  symbol.ModLiteral,
			Regex: `%`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewModOperator(), nil
			},
		},
		{
			Kind:  symbol.PlusLiteral,
			Regex: `\+`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewPlusOperator(), nil
			},
		},
		{
			Kind:  symbol.MinusLiteral,
			Regex: `-`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewMinusOperator(), nil
			},
		},
		{
			Kind:  symbol.GreaterThanOrEqualLiteral,
			Regex: `>=`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewGreaterThanOrEqualOperator(), nil
			},
		},
		{
			Kind:  symbol.LessThanOrEqualLiteral,
			Regex: `<=`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewLessThanOrEqualOperator(), nil
			},
		},
		{
			Kind:  symbol.LessThanLiteral,
			Regex: `<`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewLessThanOperator(), nil
			},
		},
		{
			Kind:  symbol.GreaterThanLiteral,
			Regex: `>`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewGreaterThanOperator(), nil
			},
		},
		{
			Kind:  symbol.EqualLiteral,
			Regex: `==`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewEqualOperator(), nil
			},
		},
		{
			Kind:  symbol.NotEqualLiteral,
			Regex: `!=`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewNotEqualOperator(), nil
			},
		},
		{
			Kind:  symbol.NotLiteral,
			Regex: `NOT`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewNotOperator(), nil
			},
		},
		{
			Kind:  symbol.AndLiteral,
			Regex: `AND`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewAndOperator(), nil
			},
		},
		{
			Kind:  symbol.OrLiteral,
			Regex: `OR`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewOrOperator(), nil
			},
		},
		{
			Kind:  symbol.LeftParenthesisLiteral,
			Regex: `\(`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewPunctuator(ast.LeftParenthesis), nil
			},
		},
		{
			Kind:  symbol.RightParenthesisLiteral,
			Regex: `\)`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NewPunctuator(ast.RightParenthesis), nil
			},
		},
		{
			Kind:  symbol.BoolLiteral,
			Regex: `TRUE|FALSE`,
			Factory: func(lexeme string) (ast.Representable, error) {
				return ast.NewBoolOperand(lexeme), nil
			},
		},
		{
			Kind:  symbol.NoneLiteral,
			Regex: `None`,
			Factory: func(string) (ast.Representable, error) {
				return ast.NoneOperand{}, nil
			},
		},
		{
			Kind:  symbol.StringLiteral,
			Regex: `"[^"]*"|'[^']*'`,
			Factory: func(lexeme string) (ast.Representable, error) {
				return ast.NewStringOperand(lexeme), nil
			},
		},
		{
			Kind:  symbol.AttributeLiteral,
			Regex: `\.[A-Za-z]\w*`,
			Factory: func(lexeme string) (ast.Representable, error) {
				return ast.NewAttributeOperator(lexeme), nil
			},
		},
		{
			Kind:  symbol.VariableLiteral,
			Regex: `[A-Za-z]\w*`,
			Factory: func(lexeme string) (ast.Representable, error) {
				return ast.NewVariableOperand(lexeme), nil
			},
		},
		{
			Kind:  symbol.FloatLiteral,
			Regex: `\d+\.\d+`,
			Factory: func(lexeme string) (ast.Representable, error) {
				return ast.NewFloatOperand(lexeme)
			},
		},
		{
			Kind:  symbol.IntegerLiteral,
			Regex: `\d+`,
			Factory: func(lexeme string) (ast.Representable, error) {
				return ast.NewIntOperand(lexeme)
			},
		},
		{
			Kind:    symbol.InvalidSymbol,
			Regex:   `[^ \n]+`,
			Factory: nil,
		},
	}
}
