package emulator

import (
	"errors"

	"github.com/ezrec/bitcpu/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the program counter of a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %v %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrBreakExpression is a break expression that did not yield a value.
type ErrBreakExpression string

func (err ErrBreakExpression) Error() string {
	return f("break expression '%v' has no value", string(err))
}
