package chain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNetwork = errors.New("network error")
	ErrDecode  = errors.New("decode error")
)

// NetworkError reports a failed request to a chain node.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// DecodeError reports a node response that could not be interpreted.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// Network wraps err as a NetworkError. A nil err stays nil.
func Network(op string, err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{Op: op, Err: err}
}

// Decode wraps err as a DecodeError. A nil err stays nil.
func Decode(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Op: op, Err: err}
}

// Classify wraps an error returned by an RPC call. JSON decoding failures
// become DecodeError, everything else is treated as a NetworkError.
// Errors that are already classified are returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNetwork) || errors.Is(err, ErrDecode) {
		return err
	}
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return Decode(op, err)
	}
	return Network(op, err)
}
