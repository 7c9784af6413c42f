package params

import "fmt"

type constError string

func (e constError) Error() string {
	return string(e)
}

// Error kinds returned by the schema and binder. Match them with errors.Is;
// aggregated errors from Bind match every kind they contain.
const (
	ErrUnknownParameter         = constError("unknown parameter")
	ErrTypeMismatch             = constError("type mismatch")
	ErrOutOfDomain              = constError("value out of domain")
	ErrMissingRequiredParameter = constError("missing required parameter")
	ErrIncompatibleParameters   = constError("incompatible parameters")
	errInvalidSchema            = constError("invalid schema")
)

// ParamError describes a single failed parameter check.
type ParamError struct {
	// Kind is one of the Err* sentinels.
	Kind   error
	Param  string
	Value  interface{}
	Reason string
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Kind, e.Param)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap exposes the kind for errors.Is.
func (e *ParamError) Unwrap() error {
	return e.Kind
}

func newParamError(kind error, name string, raw interface{}, format string, args ...interface{}) *ParamError {
	return &ParamError{
		Kind:   kind,
		Param:  name,
		Value:  raw,
		Reason: fmt.Sprintf(format, args...),
	}
}
