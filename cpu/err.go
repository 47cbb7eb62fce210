package cpu

import (
	"errors"
	"strings"

	"github.com/ezrec/bitcpu/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrFieldRange = errors.New(f("field out of range"))
	ErrFieldDigit = errors.New(f("field is not binary"))

	// Execution errors
	ErrRegisterBounds  = errors.New(f("register address out of bounds"))
	ErrMemoryBounds    = errors.New(f("memory address out of bounds"))
	ErrFunctionInvalid = errors.New(f("function code invalid"))
	ErrOpcodeInvalid   = errors.New(f("op code invalid"))
	ErrDivideByZero    = errors.New(f("division by zero"))

	// Fetch errors
	ErrPcRange = errors.New(f("program counter out of range"))
)

// ErrDecode reports an instruction line that could not be decoded.
type ErrDecode struct {
	Line  string    // Offending line, as fetched.
	Field CodeField // Field that failed to convert.
	Err   error
}

func (err *ErrDecode) Error() string {
	return f("invalid instruction line '%v' %v %v", strings.TrimRight(err.Line, "\r\n"), err.Field, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}

// ErrExecution reports a fault raised while executing an instruction.
type ErrExecution struct {
	Instruction Instruction
	Err         error
}

func (err *ErrExecution) Error() string {
	return f("'%v' %v", err.Instruction, err.Err)
}

func (err *ErrExecution) Unwrap() error {
	return err.Err
}
