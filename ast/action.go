package ast

// Action is a host- or built-in-supplied callback invoked by an ActionEvaluable. A host
// extending the catalog with its own action type (see grammar.Grammar.With, replacing
// the Action production) implements this interface directly; ValidateArgs is called
// once, during Validate, and Execute only if validation of the whole tree succeeded.
type Action interface {
	Representable

	// ValidateArgs reports whether args is an acceptable argument list for this action.
	// It must not have side effects: it may be called on an action whose surrounding
	// tree turns out to contain an error elsewhere and whose Execute is never reached.
	ValidateArgs(args ...interface{}) bool

	// Execute runs the action against args, already resolved to their true values.
	Execute(args ...interface{}) (interface{}, error)
}

// Tuple is the result of a ReturnAction invoked with zero or more than one argument,
// mirroring the multi-value tuple RETURN(1, 2, 3) produces in the source material.
type Tuple []interface{}

// ReturnAction is the built-in `RETURN(...)` action. It accepts any number of
// arguments, including zero, and returns them unchanged: a single argument is returned
// as-is, zero or more than one as a Tuple.
type ReturnAction struct {
	representableBase
}

// NewReturnAction returns a ReturnAction.
func NewReturnAction() ReturnAction {
	return ReturnAction{}
}

func (ReturnAction) ValidateArgs(...interface{}) bool {
	return true
}

func (ReturnAction) Execute(args ...interface{}) (interface{}, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return Tuple(args), nil
}
