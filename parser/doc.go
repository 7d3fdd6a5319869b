// Package parser expands a grammar.Grammar against a lexer.Token stream using
// memoized recursive-descent backtracking, producing a parsetree.Node; Reduce then
// collapses that concrete tree into the ast package's abstract Evaluable tree. This
// replaces copper's Pratt parser (prefix/infix parse function tables over a
// channel-fed token reader): the backtracking algorithm needs random access to
// already-consumed positions, which a channel cannot provide once read.
package parser
