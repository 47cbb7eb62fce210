package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bitcpu/cpu"
)

func TestBreakpoint_Eval(t *testing.T) {
	assert := assert.New(t)

	var state cpu.State
	state.Pc = 7
	state.Register[2] = 0xffffffff
	state.Memory[31] = 0x42
	code := cpu.Instruction{Op: cpu.OP_STORE, Arg1: 2, Arg2: 0, Arg3: 28}

	table := [](struct {
		expr string
		hit  bool
	}){
		{"pc == 7", true},
		{"pc == 8", false},
		{"r2 == 0xffffffff", true},
		{"r2 > 0x7fffffff", true},
		{"m31 == 0x42 and m30 == 0", true},
		{"op == 5 and arg3 == 28", true},
		{"function != 0", false},
		{"r0", false},
		{"[r for r in [r0, r1, r2] if r]", true},
	}

	for _, entry := range table {
		bp, err := NewBreakpoint(entry.expr)
		assert.NoError(err, entry.expr)
		if bp == nil {
			continue
		}
		hit, err := bp.Eval(state, code)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.hit, hit, entry.expr)
	}
}

func TestBreakpoint_Errors(t *testing.T) {
	assert := assert.New(t)

	for _, expr := range []string{"pc ==", "r32 == 0", "undefined", "1 // r0"} {
		bp, err := NewBreakpoint(expr)
		assert.Error(err, expr)
		assert.Nil(bp, expr)
	}

	bp := &Breakpoint{Expr: "None"}
	_, err := bp.Eval(cpu.State{}, cpu.Instruction{})
	assert.True(errors.Is(err, ErrBreakExpression("None")))
}
