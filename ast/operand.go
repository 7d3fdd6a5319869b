package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blizzy78/ruledsl/dslerror"
	"github.com/blizzy78/ruledsl/env"
)

// Operand is a scalar or list value literal, or a reference to one resolved from the
// environment at evaluation time. TrueValue resolves the operand to its underlying Go
// value; for every kind but VariableOperand this never consults e.
//
// Source material attaches the environment to the operand at construction time and
// raises if two operands whose environments differ (even by identity) are ever
// compared; this rewrite instead threads the environment through TrueValue so that a
// compiled tree can be evaluated against different environments. The cross-environment
// comparison restriction has no operand-level equivalent here, since Go operand values
// no longer carry an environment at all — see DESIGN.md for the open question this
// replaces.
type Operand interface {
	Representable

	// TrueValue resolves the operand's value. Only VariableOperand actually uses e.
	TrueValue(e env.Environment) (interface{}, error)
}

// NoneOperand is the literal `None`.
type NoneOperand struct {
	representableBase
}

func (NoneOperand) TrueValue(env.Environment) (interface{}, error) {
	return nil, nil
}

// BoolOperand is a literal `TRUE` or `FALSE`.
type BoolOperand struct {
	representableBase
	Value bool
}

// NewBoolOperand parses lexeme ("TRUE" or "FALSE") into a BoolOperand.
func NewBoolOperand(lexeme string) BoolOperand {
	return BoolOperand{Value: lexeme == "TRUE"}
}

func (o BoolOperand) TrueValue(env.Environment) (interface{}, error) {
	return o.Value, nil
}

// StringOperand is a quoted string literal. Only the surrounding single or double quote
// is stripped; escape sequences are not processed, matching the source grammar (which
// has no escape syntax of its own).
type StringOperand struct {
	representableBase
	Value string
}

// NewStringOperand strips the surrounding quote characters from lexeme.
func NewStringOperand(lexeme string) StringOperand {
	v := lexeme
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			v = v[1 : len(v)-1]
		}
	}
	return StringOperand{Value: v}
}

func (o StringOperand) TrueValue(env.Environment) (interface{}, error) {
	return o.Value, nil
}

// IntOperand is an integer literal.
type IntOperand struct {
	representableBase
	Value int64
}

// NewIntOperand parses lexeme as a base-10 integer.
func NewIntOperand(lexeme string) (IntOperand, error) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return IntOperand{}, fmt.Errorf("invalid integer literal %q: %w", lexeme, err)
	}
	return IntOperand{Value: v}, nil
}

func (o IntOperand) TrueValue(env.Environment) (interface{}, error) {
	return o.Value, nil
}

// FloatOperand is a floating-point literal.
type FloatOperand struct {
	representableBase
	Value float64
}

// NewFloatOperand parses lexeme as a base-10 float.
func NewFloatOperand(lexeme string) (FloatOperand, error) {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return FloatOperand{}, fmt.Errorf("invalid float literal %q: %w", lexeme, err)
	}
	return FloatOperand{Value: v}, nil
}

func (o FloatOperand) TrueValue(env.Environment) (interface{}, error) {
	return o.Value, nil
}

// VariableOperand is an identifier resolved against the environment on access.
type VariableOperand struct {
	representableBase
	Name string
}

// NewVariableOperand returns a VariableOperand for the identifier lexeme.
func NewVariableOperand(lexeme string) VariableOperand {
	return VariableOperand{Name: lexeme}
}

// TrueValue resolves the variable's name against e. It fails with a runtime error if
// the name is unbound.
func (o VariableOperand) TrueValue(e env.Environment) (interface{}, error) {
	if e != nil {
		if v, ok := e.Value(o.Name); ok {
			return v, nil
		}
	}
	return nil, dslerror.Newf(dslerror.Runtime, "%s does not exist", o.Name)
}

// attributeOperatorName trims the leading dot from an AttributeLiteral lexeme, e.g.
// ".bar" -> "bar".
func attributeOperatorName(lexeme string) string {
	return strings.TrimPrefix(lexeme, ".")
}

// indexingOperatorIndex parses the 1-based index out of an IndexingLiteral lexeme, e.g.
// "[2]" -> 2.
func indexingOperatorIndex(lexeme string) (int, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(lexeme, "["), "]")
	n, err := strconv.Atoi(inner)
	if err != nil {
		return 0, fmt.Errorf("invalid index literal %q: %w", lexeme, err)
	}
	return n, nil
}
