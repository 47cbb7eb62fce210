package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	f.Add("")
	f.Add("\n")
	f.Add("00100001100000100001000000000100\n")
	f.Add("01000000100000000000000001010010\n")
	f.Add("1010000010000000000000010000000")
	f.Add("0010000x1000001000010000000001\n")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		code, err := Decode(line)
		if err != nil {
			var de *ErrDecode
			assert.True(errors.As(err, &de))
			assert.True(errors.Is(err, ErrFieldRange) || errors.Is(err, ErrFieldDigit))
			assert.Equal(Instruction{}, code)
			return
		}

		assert.Less(uint32(code.Op), uint32(8))
		assert.Less(code.Arg1, uint32(64))
		assert.Less(code.Arg2, uint32(64))
		if code.Op == OP_ALU {
			assert.Less(code.Arg3, uint32(64))
		} else {
			assert.Less(code.Arg3, uint32(4096))
		}
		if code.Op < OP_LOAD {
			assert.Less(code.Function, uint32(8))
		} else {
			assert.Equal(uint32(0), code.Function)
		}

		// Execution never panics, whatever decoded.
		var state State
		_, _ = Execute(code, state)
	})
}
