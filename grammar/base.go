package grammar

import "github.com/blizzy78/ruledsl/symbol"

// Base returns the base grammar for the surface language. Start symbol is
// symbol.Block.
//
// Listing the longer, right-recursive alternative before its shorter prefix (e.g.
// Term, then Factor alone) is what yields right-associative operators with correct
// consumption; see parser.Parser for why that ordering matters.
func Base() Grammar {
	return Grammar{
		symbol.Block: {
			New(symbol.IfStatement, symbol.Block),
			New(symbol.IfStatement),
		},
		symbol.IfStatement: {
			New(symbol.IfLiteral, symbol.ConditionExpr, symbol.ThenLiteral, symbol.Action, symbol.ElifStatement),
			New(symbol.IfLiteral, symbol.ConditionExpr, symbol.ThenLiteral, symbol.Action),
		},
		symbol.ElifStatement: {
			New(symbol.ElseLiteral, symbol.Action),
			New(symbol.ElifLiteral, symbol.ConditionExpr, symbol.ThenLiteral, symbol.Action, symbol.ElifStatement),
			New(symbol.ElifLiteral, symbol.ConditionExpr, symbol.ThenLiteral, symbol.Action),
		},
		symbol.Action: {
			New(symbol.ReturnLiteral, symbol.Operand, symbol.RightParenthesisLiteral),
			New(symbol.ReturnLiteral, symbol.Operand, symbol.ActionArg),
		},
		symbol.ActionArg: {
			New(symbol.CommaLiteral, symbol.Operand, symbol.RightParenthesisLiteral),
			New(symbol.CommaLiteral, symbol.Operand, symbol.ActionArg),
		},
		symbol.ConditionExpr: {
			New(symbol.ConditionTerm, symbol.OrLiteral, symbol.ConditionExpr),
			New(symbol.ConditionTerm),
		},
		symbol.ConditionTerm: {
			New(symbol.ConditionFactor, symbol.AndLiteral, symbol.ConditionExpr),
			New(symbol.ConditionFactor),
		},
		symbol.ConditionFactor: {
			New(symbol.NotLiteral, symbol.Condition),
			New(symbol.BoolLiteral),
			New(symbol.Condition),
		},
		symbol.Condition: {
			New(symbol.Expression, symbol.EqualLiteral, symbol.Condition),
			New(symbol.Expression, symbol.NotEqualLiteral, symbol.Condition),
			New(symbol.Expression, symbol.GreaterThanLiteral, symbol.Condition),
			New(symbol.Expression, symbol.LessThanLiteral, symbol.Condition),
			New(symbol.Expression, symbol.LessThanOrEqualLiteral, symbol.Condition),
			New(symbol.Expression, symbol.GreaterThanOrEqualLiteral, symbol.Condition),
			New(symbol.Expression),
		},
		symbol.Expression: {
			New(symbol.Term, symbol.PlusLiteral, symbol.Expression),
			New(symbol.Term, symbol.MinusLiteral, symbol.Expression),
			New(symbol.Term),
		},
		symbol.Term: {
			New(symbol.Factor, symbol.MultLiteral, symbol.Expression),
			New(symbol.Factor, symbol.DivLiteral, symbol.Expression),
			New(symbol.Factor, symbol.ModLiteral, symbol.Expression),
			New(symbol.Factor),
		},
		symbol.Factor: {
			New(symbol.CountLiteral, symbol.ConditionExpr, symbol.RightParenthesisLiteral),
			New(symbol.VariableLiteral, symbol.AttributeLiteral, symbol.AttributeLiteral),
			New(symbol.VariableLiteral, symbol.IndexingLiteral, symbol.AttributeLiteral),
			New(symbol.VariableLiteral, symbol.AttributeLiteral),
			New(symbol.VariableLiteral, symbol.IndexingLiteral),
			New(symbol.Operand),
			New(symbol.LeftParenthesisLiteral, symbol.Condition, symbol.RightParenthesisLiteral),
		},
		symbol.Operand: {
			New(symbol.VariableLiteral),
			New(symbol.IntegerLiteral),
			New(symbol.FloatLiteral),
			New(symbol.StringLiteral),
			New(symbol.BoolLiteral),
			New(symbol.NoneLiteral),
			New(symbol.List),
		},
		symbol.List: {
			New(symbol.LeftSquareBracketLiteral, symbol.Operand, symbol.RightSquareBracketLiteral),
			New(symbol.LeftSquareBracketLiteral, symbol.Operand, symbol.ListArg),
		},
		symbol.ListArg: {
			New(symbol.CommaLiteral, symbol.Operand, symbol.RightSquareBracketLiteral),
			New(symbol.CommaLiteral, symbol.Operand, symbol.ListArg),
		},
	}
}
