package hamming

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure returned from this
// package.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a payload or codeword that is not a binary string of the
// required length.
type InputError struct {
	Op    string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("hamming: %s %q: %s: %v", e.Op, e.Input, ErrInvalidInput, e.Err)
}

func (e *InputError) Unwrap() []error {
	errs := []error{ErrInvalidInput}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
