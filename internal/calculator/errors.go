package calculator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOperationNotSupported matches every *OperationNotSupportedError via
	// errors.Is.
	ErrOperationNotSupported = errors.New("calculator: operation not supported")

	// ErrUnknownVariant indicates a calculator variant name with no constructor.
	ErrUnknownVariant = errors.New("calculator: unknown variant")
)

// OperationNotSupportedError is returned by Execute when the requested name is
// not bound to the calculator.
type OperationNotSupportedError struct {
	Operation string
	Supported []string
}

func (e *OperationNotSupportedError) Error() string {
	return fmt.Sprintf("operation %q not supported, choose a valid operation [%s]",
		e.Operation, strings.Join(e.Supported, ", "))
}

func (e *OperationNotSupportedError) Unwrap() error {
	return ErrOperationNotSupported
}
