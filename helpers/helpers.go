// Package helpers renders an action's arguments or result as a display string, for use
// in validation-error messages and host-side logging. Adapted from copper's toString,
// which did the same job for literal template output; this version drops the HTML
// escaping and scope lookups that were specific to rendering markup, and adds Tuple so a
// multi-value RETURN(...) result prints as one line instead of Go's default struct dump.
package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blizzy78/ruledsl/ast"
)

// Format renders v as a string for display: a Stringer is asked directly, nil prints as
// None, a string as itself, a bool as TRUE/FALSE, an int64 or float64 as its number, a
// Tuple or []interface{} renders its elements comma-separated in brackets, and every
// other type falls back to a type-tagged placeholder rather than silently stringifying
// something unexpected.
func Format(v interface{}) string {
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}

	switch value := v.(type) {
	case nil:
		return "None"
	case string:
		return value
	case bool:
		if value {
			return "TRUE"
		}
		return "FALSE"
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case ast.Tuple:
		return formatList([]interface{}(value))
	case []interface{}:
		return formatList(value)
	default:
		return fmt.Sprintf("[?TYPE? %T]", v)
	}
}

func formatList(els []interface{}) string {
	parts := make([]string, len(els))
	for i, el := range els {
		parts[i] = Format(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
