// Package ruledsl is the facade that ties the lexer, parser, and evaluator packages
// together into the two operations a host actually calls: Validate and Execute. It
// plays the role copper's template package plays for that engine's Renderer - the
// single entry point a caller imports, with the tokenize/parse/reduce pipeline as an
// internal implementation detail.
package ruledsl
