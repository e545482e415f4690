package parser

import (
	"fmt"
)

// PersistenceError reports a failed read or write of the persistence gateway.
// Progress is never advanced past a PersistenceError.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// FailedBlocksError is returned under the halt policy when a window had failed blocks.
type FailedBlocksError struct {
	Blocks []int64
}

func (e *FailedBlocksError) Error() string {
	return fmt.Sprintf("failed blocks %v", e.Blocks)
}
