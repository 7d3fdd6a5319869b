package evaluator

import "github.com/blizzy78/ruledsl/dslerror"

// IsRuntimeError reports whether err is a *dslerror.Error of kind dslerror.Runtime, the
// kind Evaluate reports for everything that can only go wrong once a tree is actually
// walked: an unresolved variable, an operator applied to the wrong shape of value, a
// malformed statement or action node. An error returned by an action's own Execute is
// passed through as the action returned it, not rewrapped as a Runtime error.
func IsRuntimeError(err error) bool {
	return dslerror.Is(err, dslerror.Runtime)
}
