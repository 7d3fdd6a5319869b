// Package ast holds the two tree layers the parser's reducer produces: Representable
// leaves (keywords, punctuators, operands, operators, actions) and Evaluable interior
// nodes, one variant per grammatical construct (Block, IfStatement, ElifStatement,
// Action, ActionArg, List, ListArg, Expression). Both satisfy Node, so an Evaluable's
// Children slice can hold either without a second sum type.
//
// This package plays the role copper's ast package plays for its template language,
// but the node shapes are rebuilt from scratch: copper parses directly into a Pratt
// expression tree keyed by token type, while this engine's parser first produces a
// grammar-shaped concrete parse tree (see parsetree.Node) that a separate reduction
// step (parser.Reduce) collapses into the trees defined here.
package ast
