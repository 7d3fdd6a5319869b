package ast

import (
	"fmt"
	"reflect"
)

// asSlice converts v to a []interface{} if v is a slice or array (including one backed by
// a type derived from those, such as a host-supplied []string), reporting ok=false
// otherwise. It is the broadcast test every binary/unary operator consults to decide
// whether to apply itself element-wise or as a plain scalar operation.
//
// Adapted from copper's evaluator.toSlice: that helper converted a scope value for template
// iteration; this one additionally reports ok rather than erroring, since "not a slice"
// is the expected, common case for an operator operand rather than a failure.
func asSlice(v interface{}) (s []interface{}, ok bool) {
	if v == nil {
		return nil, false
	}

	if sl, direct := v.([]interface{}); direct {
		return sl, true
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		l := value.Len()
		s = make([]interface{}, l)
		for i := 0; i < l; i++ {
			s[i] = value.Index(i).Interface()
		}
		return s, true
	default:
		return nil, false
	}
}

// asNumber converts v to a float64, accepting any of the signed/unsigned integer kinds
// or float32/float64. It backs the arithmetic operators (+ - * / %), which do not
// distinguish int from float inputs beyond producing an int result when both operands
// were integral.
func asNumber(v interface{}) (f float64, isInt bool, err error) {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), true, nil
	case reflect.Float32, reflect.Float64:
		return value.Float(), false, nil
	default:
		return 0, false, fmt.Errorf("cannot use value of type %T as a number", v)
	}
}

// asAttributeSource returns a reflect.Value view of v suitable for field/key access by
// AttributeOperator, along with whether v is a map (in which case attribute access
// means a map lookup rather than a struct field).
func asAttributeSource(v interface{}) (value reflect.Value, isMap bool) {
	value = reflect.ValueOf(v)
	if value.Kind() == reflect.Map {
		return value, true
	}
	for value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	return value, false
}

// Truthy reports whether v should be treated as true by an IF/ELIF condition: non-zero
// numbers, non-empty strings and lists, true booleans, and any other non-nil value are
// truthy; nil, zero numbers, empty strings, and empty lists are not.
func Truthy(v interface{}) bool {
	return truthy(v)
}

// truthy reports whether v should be treated as true by a condition: non-zero numbers,
// non-empty strings and lists, true booleans, and any other non-nil value are truthy;
// nil, zero numbers, empty strings, and empty lists are not.
func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case []interface{}:
		return len(value) > 0
	}

	if f, _, err := asNumber(v); err == nil {
		return f != 0
	}

	if s, ok := asSlice(v); ok {
		return len(s) > 0
	}

	return true
}
