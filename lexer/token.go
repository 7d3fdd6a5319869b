package lexer

import (
	"fmt"

	"github.com/blizzy78/ruledsl/ast"
	"github.com/blizzy78/ruledsl/symbol"
)

// Token is one lexeme recognized from the input string. Its Representable is already
// built by the matching TerminalDef's Factory at scan time, so later stages never need
// to map a lexeme back to an ast node themselves.
type Token struct {
	Kind          symbol.TerminalKind
	Lexeme        string
	Line          int
	Col           int
	Representable ast.Representable
}

// Equal reports whether t and o have the same kind and lexeme. Source position and the
// built Representable do not take part.
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind && t.Lexeme == o.Lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%q (%s) at %d:%d", t.Lexeme, t.Kind, t.Line, t.Col)
}
