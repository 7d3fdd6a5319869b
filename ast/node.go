package ast

// Node is either a Representable leaf or an *Evaluable interior node. An Evaluable's
// Children are always a slice of Node.
type Node interface {
	node()
}

// Representable is a semantic leaf or operator node produced directly from a parse-tree
// terminal: a Keyword, Punctuator, Operand, Operator, or Action.
type Representable interface {
	Node
	representable()
}

// representableBase gives every concrete Representable both the node and representable
// marker methods without repeating the (empty) method bodies on each type.
type representableBase struct{}

func (representableBase) node()           {}
func (representableBase) representable() {}
