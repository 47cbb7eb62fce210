package cpu

import (
	"fmt"
	"strconv"
)

// CodeField identifies one field of an instruction line.
type CodeField int

const (
	FIELD_OP       = CodeField(0) // op_code
	FIELD_ARG1     = CodeField(1) // arg1
	FIELD_ARG2     = CodeField(2) // arg2
	FIELD_ARG3     = CodeField(3) // arg3
	FIELD_FUNCTION = CodeField(4) // function
)

var codeFieldName = [...]string{
	FIELD_OP:       "op_code",
	FIELD_ARG1:     "arg1",
	FIELD_ARG2:     "arg2",
	FIELD_ARG3:     "arg3",
	FIELD_FUNCTION: "function",
}

func (cf CodeField) String() string {
	if cf < 0 || int(cf) >= len(codeFieldName) {
		return fmt.Sprintf("CodeField(%d)", int(cf))
	}
	return codeFieldName[cf]
}

// fieldSlice is a run of binary digits within an instruction line.
// Negative offsets count back from the end of the line.
type fieldSlice struct {
	Field CodeField
	Start int
	End   int
	When  func(op CodeOp) bool // nil applies to every op code.
}

// fieldTable drives Decode. FIELD_OP must come first, as later rows
// select on it.
var fieldTable = []fieldSlice{
	{Field: FIELD_OP, Start: 0, End: 3},
	{Field: FIELD_ARG1, Start: 3, End: 9},
	{Field: FIELD_ARG2, Start: 9, End: 15},
	{Field: FIELD_ARG3, Start: 15, End: 21, When: func(op CodeOp) bool { return op == OP_ALU }},
	{Field: FIELD_ARG3, Start: 15, End: 27, When: func(op CodeOp) bool { return op != OP_ALU }},
	{Field: FIELD_FUNCTION, Start: -6, End: -3, When: func(op CodeOp) bool { return op < OP_LOAD }},
}

// bounds resolves the slice offsets against a line of length n.
func (fs fieldSlice) bounds(n int) (start, end int) {
	start, end = fs.Start, fs.End
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	return
}

// extract converts the field's digits in line to an unsigned value.
func (fs fieldSlice) extract(line string) (value uint32, err error) {
	start, end := fs.bounds(len(line))
	if start < 0 || end > len(line) || start >= end {
		err = ErrFieldRange
		return
	}

	v64, err := strconv.ParseUint(line[start:end], 2, 32)
	if err != nil {
		err = ErrFieldDigit
		return
	}

	value = uint32(v64)
	return
}

// Decode decodes a single instruction line. The line is sliced as is,
// including any line terminator, so end-relative fields count it.
func Decode(line string) (code Instruction, err error) {
	for _, fs := range fieldTable {
		if fs.When != nil && !fs.When(code.Op) {
			continue
		}

		var value uint32
		value, err = fs.extract(line)
		if err != nil {
			err = &ErrDecode{Line: line, Field: fs.Field, Err: err}
			code = Instruction{}
			return
		}

		switch fs.Field {
		case FIELD_OP:
			code.Op = CodeOp(value)
		case FIELD_ARG1:
			code.Arg1 = value
		case FIELD_ARG2:
			code.Arg2 = value
		case FIELD_ARG3:
			code.Arg3 = value
		case FIELD_FUNCTION:
			code.Function = value
		}
	}

	return
}
