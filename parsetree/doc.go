// Package parsetree defines the concrete parse tree a parser.Parser builds directly
// from the grammar: one Node per non-terminal it expanded, plus leaf nodes wrapping the
// tokens it consumed. It carries no evaluation semantics of its own; parser.Reduce
// turns a parsetree.Node into the ast package's abstract Evaluable tree.
package parsetree
