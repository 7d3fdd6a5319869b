// Package symbol defines the closed set of terminal and non-terminal kinds that the
// lexer, grammar, and parser are built around, along with the shared Kind interface
// that lets a grammar production mix both in a single ordered body.
package symbol
