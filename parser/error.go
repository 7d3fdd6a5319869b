package parser

import "github.com/blizzy78/ruledsl/dslerror"

// IsSyntaxError reports whether err is a *dslerror.Error of kind dslerror.Syntax, the
// kind Parse reports when no production chain can consume the full token stream.
func IsSyntaxError(err error) bool {
	return dslerror.Is(err, dslerror.Syntax)
}
