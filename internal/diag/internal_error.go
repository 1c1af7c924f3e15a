package diag

import "github.com/pkg/errors"

// InternalError is the panic value Bug raises for a failed
// precondition or invariant inside the core, as opposed to a
// diagnostic about the program. No code in the IR generator or IR
// optimizer calls Bug or BugIf: an expression shape the generator does
// not recognize lowers to no code instead of panicking.
//
// Wrapping with github.com/pkg/errors captures a stack trace at the
// panic site, which %+v prints; a driver recovering at its outermost
// boundary can log the full trace instead of just the message.
type InternalError struct {
	cause error
}

func (e *InternalError) Error() string { return e.cause.Error() }
func (e *InternalError) Unwrap() error { return e.cause }

// Bug panics with a stack-traced InternalError. Use for IR generator
// preconditions ("unreachable shape key") and optimizer invariants
// ("IFGOTO with no relop").
func Bug(format string, args ...interface{}) {
	panic(&InternalError{cause: errors.Errorf(format, args...)})
}

// BugIf panics via Bug when cond holds.
func BugIf(cond bool, format string, args ...interface{}) {
	if cond {
		Bug(format, args...)
	}
}
