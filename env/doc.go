// Package env provides the read-only variable environment that VariableOperand values
// are resolved against during evaluation. It is adapted from copper's scope package,
// trimmed to the read-only, non-nested shape the DSL needs, and taught to unwrap
// gobuffalo/nulls scalar wrappers so hosts backed by a SQL row-scan layer can hand
// their values to the DSL without pre-converting them.
package env
