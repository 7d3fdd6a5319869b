package ast

// PunctuatorKind identifies which punctuation character a Punctuator represents.
type PunctuatorKind string

const (
	LeftParenthesis    PunctuatorKind = "("
	RightParenthesis   PunctuatorKind = ")"
	Comma              PunctuatorKind = ","
	LeftSquareBracket  PunctuatorKind = "["
	RightSquareBracket PunctuatorKind = "]"
)

// Punctuator is a purely structural representable: a parenthesis, bracket, or comma.
// The reducer (parser.Reduce) drops every Punctuator it encounters, so Punctuator
// values never appear inside an Evaluable tree; their only role is to let the reducer
// recognize, and discard, the parse-tree leaves that exist solely to delimit a
// production.
type Punctuator struct {
	representableBase
	Kind PunctuatorKind
}

// NewPunctuator returns a Punctuator of the given kind.
func NewPunctuator(kind PunctuatorKind) Punctuator {
	return Punctuator{Kind: kind}
}

// IsPunctuator reports whether r is a Punctuator.
func IsPunctuator(r Representable) bool {
	_, ok := r.(Punctuator)
	return ok
}
