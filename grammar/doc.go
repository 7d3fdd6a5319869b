// Package grammar holds the declarative production tables the parser drives against.
// A Grammar maps each non-terminal kind to an ordered list of Productions; order within
// a rule is significant, since the parser tries productions in listed order and that
// order is how precedence and associativity are encoded (see parser.Parser).
package grammar
