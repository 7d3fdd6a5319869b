// Package evaluator walks an ast.Evaluable tree and reduces it to the values a rule
// actually returns. It replaces copper's tree-walking template evaluator (which carried
// a mutable scope, loop state, and literal-string/argument-resolution hooks specific to
// template rendering) with a much smaller evaluator suited to a side-effect-free rule
// language: no assignment, no loops, and exactly one kind of side effect, an Action's
// Execute.
package evaluator
