package ast

// KeywordKind identifies which of the four reserved words a Keyword represents.
type KeywordKind string

const (
	IfKeyword   KeywordKind = "If"
	ElifKeyword KeywordKind = "Elif"
	ThenKeyword KeywordKind = "Then"
	ElseKeyword KeywordKind = "Else"
)

// Keyword is a reserved-word representable: If, Elif, Then, or Else. Keywords carry no
// value beyond their kind; they exist in an Evaluable's Children purely to make the
// evaluator's shape assertions (e.g. "the third child of an IfStatement is Then")
// self-documenting.
type Keyword struct {
	representableBase
	Kind KeywordKind
}

// NewKeyword returns a Keyword of the given kind.
func NewKeyword(kind KeywordKind) Keyword {
	return Keyword{Kind: kind}
}
