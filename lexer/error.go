package lexer

import "github.com/blizzy78/ruledsl/dslerror"

// IsSyntaxError reports whether err is a *dslerror.Error of kind dslerror.Syntax, the
// kind Tokenize reports for an unrecognized lexeme.
func IsSyntaxError(err error) bool {
	return dslerror.Is(err, dslerror.Syntax)
}
