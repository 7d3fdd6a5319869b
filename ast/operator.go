package ast

import (
	"reflect"
	"strings"

	"github.com/blizzy78/ruledsl/dslerror"
)

// Operator is a unary or binary operation, carrying the precedence integer that exists
// purely for documentation here: the grammar already encodes precedence through
// non-terminal nesting (see grammar.Base), so Expression evaluation never consults
// Precedence directly. It is kept because the source material's Operator hierarchy
// enforces every concrete operator declare one, and a host extending the catalog with
// its own operator (see Function) is expected to do the same.
type Operator interface {
	Representable
	Precedence() int
}

// UnaryOperator takes a single operand.
type UnaryOperator interface {
	Operator
	Evaluate(x interface{}) (interface{}, error)
}

// BinaryOperator takes a left and a right operand.
type BinaryOperator interface {
	Operator
	Evaluate(x, y interface{}) (interface{}, error)
}

type operatorBase struct {
	representableBase
	precedence int
}

func (o operatorBase) Precedence() int {
	return o.precedence
}

// DivOperator is the binary `/` operator.
type DivOperator struct{ operatorBase }

func NewDivOperator() DivOperator { return DivOperator{operatorBase{precedence: 5}} }

func (DivOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return arithmetic(x, y, func(a, b float64) float64 { return a / b })
}

// MultOperator is the binary `*` operator.
type MultOperator struct{ operatorBase }

func NewMultOperator() MultOperator { return MultOperator{operatorBase{precedence: 5}} }

func (MultOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return arithmetic(x, y, func(a, b float64) float64 { return a * b })
}

// ModOperator is the binary `%` operator.
type ModOperator struct{ operatorBase }

func NewModOperator() ModOperator { return ModOperator{operatorBase{precedence: 5}} }

func (ModOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return arithmetic(x, y, func(a, b float64) float64 {
		return float64(int64(a) % int64(b))
	})
}

// PlusOperator is the binary `+` operator.
type PlusOperator struct{ operatorBase }

func NewPlusOperator() PlusOperator { return PlusOperator{operatorBase{precedence: 4}} }

func (PlusOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return arithmetic(x, y, func(a, b float64) float64 { return a + b })
}

// MinusOperator is the binary `-` operator.
type MinusOperator struct{ operatorBase }

func NewMinusOperator() MinusOperator { return MinusOperator{operatorBase{precedence: 4}} }

func (MinusOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return arithmetic(x, y, func(a, b float64) float64 { return a - b })
}

func arithmetic(x, y interface{}, f func(a, b float64) float64) (interface{}, error) {
	a, aInt, err := asNumber(x)
	if err != nil {
		return nil, dslerror.New(dslerror.Runtime, err)
	}
	b, bInt, err := asNumber(y)
	if err != nil {
		return nil, dslerror.New(dslerror.Runtime, err)
	}
	r := f(a, b)
	if aInt && bInt {
		return int64(r), nil
	}
	return r, nil
}

// comparison kinds shared by the four ordering operators.
type compareFunc func(a, b float64) bool

func compare(x, y interface{}, f compareFunc) (interface{}, error) {
	return broadcastBinary(x, y, func(a, b interface{}) (interface{}, error) {
		af, _, err := asNumber(a)
		if err != nil {
			return nil, dslerror.New(dslerror.Runtime, err)
		}
		bf, _, err := asNumber(b)
		if err != nil {
			return nil, dslerror.New(dslerror.Runtime, err)
		}
		return f(af, bf), nil
	})
}

// GreaterThanOrEqualOperator is the binary `>=` operator.
type GreaterThanOrEqualOperator struct{ operatorBase }

func NewGreaterThanOrEqualOperator() GreaterThanOrEqualOperator {
	return GreaterThanOrEqualOperator{operatorBase{precedence: 3}}
}

func (GreaterThanOrEqualOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return compare(x, y, func(a, b float64) bool { return a >= b })
}

// LessThanOrEqualOperator is the binary `<=` operator.
type LessThanOrEqualOperator struct{ operatorBase }

func NewLessThanOrEqualOperator() LessThanOrEqualOperator {
	return LessThanOrEqualOperator{operatorBase{precedence: 3}}
}

func (LessThanOrEqualOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return compare(x, y, func(a, b float64) bool { return a <= b })
}

// LessThanOperator is the binary `<` operator.
type LessThanOperator struct{ operatorBase }

func NewLessThanOperator() LessThanOperator { return LessThanOperator{operatorBase{precedence: 3}} }

func (LessThanOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return compare(x, y, func(a, b float64) bool { return a < b })
}

// GreaterThanOperator is the binary `>` operator.
type GreaterThanOperator struct{ operatorBase }

func NewGreaterThanOperator() GreaterThanOperator {
	return GreaterThanOperator{operatorBase{precedence: 3}}
}

func (GreaterThanOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return compare(x, y, func(a, b float64) bool { return a > b })
}

// EqualOperator is the binary `==` operator. If either side is a list, the comparison
// broadcasts: scalar-vs-list compares the scalar against each element, list-vs-list
// zips the two lists element-wise.
type EqualOperator struct{ operatorBase }

func NewEqualOperator() EqualOperator { return EqualOperator{operatorBase{precedence: 3}} }

func (EqualOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return broadcastBinary(x, y, func(a, b interface{}) (interface{}, error) {
		return valueEqual(a, b), nil
	})
}

// NotEqualOperator is the binary `!=` operator, with the same broadcast rule as
// EqualOperator.
type NotEqualOperator struct{ operatorBase }

func NewNotEqualOperator() NotEqualOperator { return NotEqualOperator{operatorBase{precedence: 3}} }

func (NotEqualOperator) Evaluate(x, y interface{}) (interface{}, error) {
	return broadcastBinary(x, y, func(a, b interface{}) (interface{}, error) {
		return !valueEqual(a, b), nil
	})
}

func valueEqual(a, b interface{}) bool {
	af, aIsNum, aErr := asNumber(a)
	bf, bIsNum, bErr := asNumber(b)
	if aErr == nil && bErr == nil && (aIsNum || bIsNum) {
		return af == bf
	}
	return a == b
}

// AndOperator is the binary `AND` operator: zipped element-wise if both sides are
// lists, otherwise a plain logical AND of the two sides' truthiness.
type AndOperator struct{ operatorBase }

func NewAndOperator() AndOperator { return AndOperator{operatorBase{precedence: 1}} }

func (AndOperator) Evaluate(x, y interface{}) (interface{}, error) {
	if xs, xok := asSlice(x); xok {
		if ys, yok := asSlice(y); yok {
			return zip(xs, ys, func(a, b interface{}) interface{} {
				return truthy(a) && truthy(b)
			})
		}
	}
	return truthy(x) && truthy(y), nil
}

// OrOperator is the binary `OR` operator, with the same list-zip rule as AndOperator.
type OrOperator struct{ operatorBase }

func NewOrOperator() OrOperator { return OrOperator{operatorBase{precedence: 0}} }

func (OrOperator) Evaluate(x, y interface{}) (interface{}, error) {
	if xs, xok := asSlice(x); xok {
		if ys, yok := asSlice(y); yok {
			return zip(xs, ys, func(a, b interface{}) interface{} {
				return truthy(a) || truthy(b)
			})
		}
	}
	return truthy(x) || truthy(y), nil
}

// NotOperator is the unary `NOT` operator: element-wise negation on a list, otherwise
// plain logical negation.
type NotOperator struct{ operatorBase }

func NewNotOperator() NotOperator { return NotOperator{operatorBase{precedence: 2}} }

func (NotOperator) Evaluate(x interface{}) (interface{}, error) {
	if xs, ok := asSlice(x); ok {
		r := make([]interface{}, len(xs))
		for i, v := range xs {
			r[i] = !truthy(v)
		}
		return r, nil
	}
	return !truthy(x), nil
}

// AttributeOperator is the unary postfix `.name` operator: a map key or struct field
// lookup, broadcast over every element if applied to a list.
type AttributeOperator struct {
	operatorBase
	Name string
}

// NewAttributeOperator parses an AttributeLiteral lexeme (e.g. ".bar") into an
// AttributeOperator.
func NewAttributeOperator(lexeme string) AttributeOperator {
	return AttributeOperator{operatorBase{precedence: 6}, attributeOperatorName(lexeme)}
}

func (o AttributeOperator) Evaluate(x interface{}) (interface{}, error) {
	if xs, ok := asSlice(x); ok {
		r := make([]interface{}, len(xs))
		for i, v := range xs {
			av, err := o.attributeOf(v)
			if err != nil {
				return nil, err
			}
			r[i] = av
		}
		return r, nil
	}
	return o.attributeOf(x)
}

func (o AttributeOperator) attributeOf(v interface{}) (interface{}, error) {
	if m, ok := v.(map[string]interface{}); ok {
		av, ok := m[o.Name]
		if !ok {
			return nil, dslerror.Newf(dslerror.Runtime, "attribute %q not found", o.Name)
		}
		return av, nil
	}

	value, isMap := asAttributeSource(v)
	if isMap {
		mv := value.MapIndex(reflect.ValueOf(o.Name))
		if !mv.IsValid() {
			return nil, dslerror.Newf(dslerror.Runtime, "attribute %q not found", o.Name)
		}
		return mv.Interface(), nil
	}

	if value.Kind() != reflect.Struct {
		return nil, dslerror.Newf(dslerror.Runtime, "cannot access attribute %q of %T", o.Name, v)
	}

	fv := value.FieldByName(o.Name)
	if !fv.IsValid() && o.Name != "" {
		// Exported Go fields start upper-case, so `.name` also finds a field `Name`.
		fv = value.FieldByName(strings.ToUpper(o.Name[:1]) + o.Name[1:])
	}
	if !fv.IsValid() {
		return nil, dslerror.Newf(dslerror.Runtime, "attribute %q not found", o.Name)
	}
	return fv.Interface(), nil
}

// IndexingOperator is the unary postfix `[n]` operator: 1-based indexing into a list.
type IndexingOperator struct {
	operatorBase
	Index int
}

// NewIndexingOperator parses an IndexingLiteral lexeme (e.g. "[2]") into an
// IndexingOperator.
func NewIndexingOperator(lexeme string) (IndexingOperator, error) {
	n, err := indexingOperatorIndex(lexeme)
	if err != nil {
		return IndexingOperator{}, err
	}
	return IndexingOperator{operatorBase{precedence: 6}, n}, nil
}

func (o IndexingOperator) Evaluate(x interface{}) (interface{}, error) {
	xs, ok := asSlice(x)
	if !ok {
		return nil, dslerror.Newf(dslerror.Runtime, "cannot index into %T", x)
	}
	i := o.Index - 1
	if i < 0 || i >= len(xs) {
		return nil, dslerror.Newf(dslerror.Runtime, "index %d out of range", o.Index)
	}
	return xs[i], nil
}

// Function is a unary operator that is also registrable as a custom terminal kind's
// representable (see CountFunction). Hosts extending the catalog with a function-call
// Factor production (see grammar.Grammar.With) implement this interface directly.
type Function interface {
	UnaryOperator
}

// CountFunction is the built-in `COUNT(...)` function: the sum of truthy elements of
// its iterable argument. Because it is itself a UnaryOperator, it can also be used as
// an ordinary Factor in further arithmetic (e.g. `COUNT(a.b == 1) / 3 > 0.2`).
type CountFunction struct{ operatorBase }

func NewCountFunction() CountFunction { return CountFunction{operatorBase{precedence: -1}} }

func (CountFunction) Evaluate(x interface{}) (interface{}, error) {
	xs, ok := asSlice(x)
	if !ok {
		return nil, dslerror.Newf(dslerror.Runtime, "COUNT requires an iterable, got %T", x)
	}
	var n int64
	for _, v := range xs {
		if truthy(v) {
			n++
		}
	}
	return n, nil
}

// zip applies f pairwise over a and b, truncating to the shorter of the two, mirroring
// Python's zip() rather than raising on a length mismatch.
func zip(a, b []interface{}, f func(x, y interface{}) interface{}) ([]interface{}, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	r := make([]interface{}, n)
	for i := 0; i < n; i++ {
		r[i] = f(a[i], b[i])
	}
	return r, nil
}

func broadcastBinary(x, y interface{}, f func(a, b interface{}) (interface{}, error)) (interface{}, error) {
	xs, xIsList := asSlice(x)
	ys, yIsList := asSlice(y)

	switch {
	case xIsList && yIsList:
		n := len(xs)
		if len(ys) < n {
			n = len(ys)
		}
		r := make([]interface{}, n)
		for i := 0; i < n; i++ {
			v, err := f(xs[i], ys[i])
			if err != nil {
				return nil, err
			}
			r[i] = v
		}
		return r, nil

	case xIsList:
		r := make([]interface{}, len(xs))
		for i := range xs {
			v, err := f(xs[i], y)
			if err != nil {
				return nil, err
			}
			r[i] = v
		}
		return r, nil

	case yIsList:
		r := make([]interface{}, len(ys))
		for i := range ys {
			v, err := f(x, ys[i])
			if err != nil {
				return nil, err
			}
			r[i] = v
		}
		return r, nil

	default:
		return f(x, y)
	}
}
