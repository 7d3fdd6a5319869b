package symbol

// Kind is implemented by both TerminalKind and NonTerminalKind so that a grammar
// production body can hold an ordered mix of the two without resorting to pointer
// identity for comparison or memoization.
type Kind interface {
	symbolKind()
}

// TerminalKind identifies a lexical token kind recognized by the lexer. Kinds are
// named rather than enumerated as a closed set of ints so that a host can register
// additional kinds (see lexer.WithInclusions) without colliding with the base catalog.
type TerminalKind string

func (TerminalKind) symbolKind() {}

// String returns the kind's name.
func (k TerminalKind) String() string {
	return string(k)
}

// NonTerminalKind identifies a grammar variable. Each non-terminal kind reduces to
// exactly one evaluable variant (see ast.EvaluableKindFor).
type NonTerminalKind string

func (NonTerminalKind) symbolKind() {}

// String returns the kind's name.
func (k NonTerminalKind) String() string {
	return string(k)
}

// Base terminal kinds, ordered highest-priority first. The order is semantically
// load-bearing: the lexer compiles them into a single alternation regex, and the
// first alternative that matches at a given position wins, so multi-character
// operators must precede their one-character prefixes.
const (
	IndexingLiteral           TerminalKind = "IndexingLiteral"
	LeftSquareBracketLiteral  TerminalKind = "LeftSquareBracketLiteral"
	RightSquareBracketLiteral TerminalKind = "RightSquareBracketLiteral"
	CommaLiteral              TerminalKind = "CommaLiteral"
	ReturnLiteral             TerminalKind = "ReturnLiteral"
	IfLiteral                 TerminalKind = "IfLiteral"
	ElifLiteral                TerminalKind = "ElifLiteral"
	ThenLiteral                TerminalKind = "ThenLiteral"
	ElseLiteral                TerminalKind = "ElseLiteral"
	CountLiteral               TerminalKind = "CountLiteral"
	DivLiteral                 TerminalKind = "DivLiteral"
	MultLiteral                TerminalKind = "MultLiteral"
	ModLiteral                 TerminalKind = "ModLiteral"
	PlusLiteral                TerminalKind = "PlusLiteral"
	MinusLiteral               TerminalKind = "MinusLiteral"
	GreaterThanOrEqualLiteral  TerminalKind = "GreaterThanOrEqualLiteral"
	LessThanOrEqualLiteral     TerminalKind = "LessThanOrEqualLiteral"
	LessThanLiteral            TerminalKind = "LessThanLiteral"
	GreaterThanLiteral         TerminalKind = "GreaterThanLiteral"
	EqualLiteral               TerminalKind = "EqualLiteral"
	NotEqualLiteral            TerminalKind = "NotEqualLiteral"
	NotLiteral                 TerminalKind = "NotLiteral"
	AndLiteral                 TerminalKind = "AndLiteral"
	OrLiteral                  TerminalKind = "OrLiteral"
	LeftParenthesisLiteral     TerminalKind = "LeftParenthesisLiteral"
	RightParenthesisLiteral    TerminalKind = "RightParenthesisLiteral"
	BoolLiteral                TerminalKind = "BoolLiteral"
	NoneLiteral                TerminalKind = "NoneLiteral"
	StringLiteral              TerminalKind = "StringLiteral"
	AttributeLiteral           TerminalKind = "AttributeLiteral"
	VariableLiteral            TerminalKind = "VariableLiteral"
	FloatLiteral               TerminalKind = "FloatLiteral"
	IntegerLiteral             TerminalKind = "IntegerLiteral"

	// InvalidSymbol must always sort last: it is the catch-all that absorbs any
	// non-whitespace run not recognized by an earlier kind, so that unknown input
	// surfaces as a syntax error rather than being silently skipped.
	InvalidSymbol TerminalKind = "InvalidSymbol"
)

// Non-terminal kinds of the base grammar (see grammar.Base).
const (
	Block           NonTerminalKind = "Block"
	IfStatement     NonTerminalKind = "IfStatement"
	ElifStatement   NonTerminalKind = "ElifStatement"
	Action          NonTerminalKind = "Action"
	ActionArg       NonTerminalKind = "ActionArg"
	ConditionExpr   NonTerminalKind = "ConditionExpr"
	ConditionTerm   NonTerminalKind = "ConditionTerm"
	ConditionFactor NonTerminalKind = "ConditionFactor"
	Condition       NonTerminalKind = "Condition"
	Expression      NonTerminalKind = "Expression"
	Term            NonTerminalKind = "Term"
	Factor          NonTerminalKind = "Factor"
	Operand         NonTerminalKind = "Operand"
	List            NonTerminalKind = "List"
	ListArg         NonTerminalKind = "ListArg"
)
