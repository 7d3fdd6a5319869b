// Package dslerror defines the four-kind error taxonomy shared by every pipeline
// stage: Syntax, Validation, Runtime, and Generic errors (see SPEC_FULL.md §7). Each
// stage wraps its own underlying error in a *dslerror.Error so that a host consuming
// ruledsl.Execute's error can dispatch on Kind (or use errors.Is/errors.As) without
// caring which internal package raised it.
//
// This generalizes the per-package typed-error pattern copper uses (lexer.parseError,
// parser.parseError, evaluator.evalError, each with its own Is*Error predicate) into a
// single shared type carrying a Kind, since the specification calls for one taxonomy
// that crosses package boundaries rather than one error type per package.
package dslerror
