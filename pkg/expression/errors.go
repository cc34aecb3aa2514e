package expression

import "fmt"

// Reasons carried by BadImplementationError.
const (
	// ReasonMissingChainFactory: the subtype never passed its chaining
	// construction entry point to NewTerm/ChainTerm.
	ReasonMissingChainFactory = "missing chaining constructor"
)

// BadImplementationError signals that a concrete Term subtype was wired
// incorrectly. It is a library-integration bug, not a recoverable runtime
// condition; the chain primitive panics with it rather than returning it.
type BadImplementationError struct {
	Expr   Expression
	Reason string
}

func (e *BadImplementationError) Error() string {
	return fmt.Sprintf("bad implementation of %T: %s", e.Expr, e.Reason)
}

// Errors flattens an error into its joined parts. Nil yields an empty slice;
// an error that does not unwrap to multiple parts yields itself.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
