package emulator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bitcpu/cpu"
)

// Breakpoint is a Starlark expression evaluated after every instruction.
//
// The expression sees pc, r0-r31, m0-m31 of the updated state, plus op,
// arg1, arg2, arg3 and function of the instruction just executed.
type Breakpoint struct {
	Expr string
}

// NewBreakpoint creates a breakpoint, and checks it against a reset machine.
func NewBreakpoint(expr string) (bp *Breakpoint, err error) {
	bp = &Breakpoint{Expr: expr}

	_, err = bp.Eval(cpu.State{}, cpu.Instruction{})
	if err != nil {
		bp = nil
	}

	return
}

// Eval returns true if the expression holds for state and code.
func (bp *Breakpoint) Eval(state cpu.State, code cpu.Instruction) (hit bool, err error) {
	thread := starlark.Thread{Name: "break"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"op":       starlark.MakeUint64(uint64(code.Op)),
		"arg1":     starlark.MakeUint64(uint64(code.Arg1)),
		"arg2":     starlark.MakeUint64(uint64(code.Arg2)),
		"arg3":     starlark.MakeUint64(uint64(code.Arg3)),
		"function": starlark.MakeUint64(uint64(code.Function)),
	}
	for key, value := range state.Symbols() {
		pred[key] = starlark.MakeUint64(uint64(value))
	}

	prog := "rc=" + bp.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "break", prog, pred)
	if err != nil {
		return
	}

	rc, ok := dict["rc"]
	if !ok || rc == starlark.None {
		err = ErrBreakExpression(bp.Expr)
		return
	}

	hit = bool(rc.Truth())
	return
}
