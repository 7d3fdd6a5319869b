package env

import "github.com/gobuffalo/nulls"

// Environment is the host-supplied, read-only name-to-value mapping that VariableOperand
// values are resolved against. Unlike copper's scope.Scope, which supports nested,
// mutable, lockable scopes for template rendering, an Environment here is a flat,
// immutable view: the DSL never assigns to variables, so there is no parent chain to walk.
type Environment interface {
	// Value returns the value bound to name. ok is false if name is not bound.
	Value(name string) (v interface{}, ok bool)
}

// MapEnvironment is an Environment backed directly by a map.
type MapEnvironment map[string]interface{}

// Value returns the value bound to name, normalizing any gobuffalo/nulls wrapper
// to its plain Go value (or nil, if the wrapper is not valid) before returning it.
func (m MapEnvironment) Value(name string) (v interface{}, ok bool) {
	v, ok = m[name]
	if !ok {
		return
	}
	v = Normalize(v)
	return
}

// Normalize unwraps a gobuffalo/nulls scalar wrapper to its plain Go value, returning
// nil if the wrapper is not valid (i.e. represents a SQL NULL). Values that are not a
// nulls wrapper are returned unchanged.
func Normalize(v interface{}) interface{} {
	switch value := v.(type) {
	case nulls.String:
		if !value.Valid {
			return nil
		}
		return value.String
	case nulls.Int64:
		if !value.Valid {
			return nil
		}
		return value.Int64
	case nulls.Float64:
		if !value.Valid {
			return nil
		}
		return value.Float64
	case nulls.Bool:
		if !value.Valid {
			return nil
		}
		return value.Bool
	default:
		return v
	}
}

// Empty is an Environment with no bound names; every Value lookup fails.
var Empty Environment = MapEnvironment(nil)

type permissive struct{}

func (permissive) Value(string) (interface{}, bool) {
	return nil, true
}

// Permissive resolves every name to nil rather than failing the lookup. It is the
// environment a DSL facade's Validate uses to evaluate action arguments ahead of any
// real environment being available: a variable reference is syntactically valid
// regardless of what it eventually resolves to, so Validate treats it as the literal
// value nil instead of rejecting the rule outright for referencing a variable at all.
var Permissive Environment = permissive{}
