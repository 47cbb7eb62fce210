package cpu

import (
	"fmt"
)

// CodeOp is the instruction family selected by the 3-bit op code.
type CodeOp uint32

const (
	OP_ALU     = CodeOp(1) // alu
	OP_ALU_IMM = CodeOp(2) // alui
	OP_BRANCH  = CodeOp(3) // branch
	OP_LOAD    = CodeOp(4) // lw
	OP_STORE   = CodeOp(5) // sw
)

var codeOpName = map[CodeOp]string{
	OP_ALU:     "alu",
	OP_ALU_IMM: "alui",
	OP_BRANCH:  "branch",
	OP_LOAD:    "lw",
	OP_STORE:   "sw",
}

func (op CodeOp) String() string {
	name, ok := codeOpName[op]
	if !ok {
		return fmt.Sprintf("CodeOp(%d)", uint32(op))
	}
	return name
}

// CodeAluFunc selects the ALU operation of OP_ALU and OP_ALU_IMM.
type CodeAluFunc uint32

const (
	ALU_FUNC_ADD = CodeAluFunc(1) // add
	ALU_FUNC_SUB = CodeAluFunc(2) // sub
	ALU_FUNC_MUL = CodeAluFunc(3) // mul
	ALU_FUNC_DIV = CodeAluFunc(4) // div
	ALU_FUNC_AND = CodeAluFunc(5) // and
	ALU_FUNC_OR  = CodeAluFunc(6) // or
	ALU_FUNC_XOR = CodeAluFunc(7) // xor
)

var codeAluFuncName = map[CodeAluFunc]string{
	ALU_FUNC_ADD: "add",
	ALU_FUNC_SUB: "sub",
	ALU_FUNC_MUL: "mul",
	ALU_FUNC_DIV: "div",
	ALU_FUNC_AND: "and",
	ALU_FUNC_OR:  "or",
	ALU_FUNC_XOR: "xor",
}

func (fn CodeAluFunc) String() string {
	name, ok := codeAluFuncName[fn]
	if !ok {
		return fmt.Sprintf("CodeAluFunc(%d)", uint32(fn))
	}
	return name
}

// CodeBranchFunc selects the comparison of OP_BRANCH.
type CodeBranchFunc uint32

const (
	BRANCH_FUNC_NEVER = CodeBranchFunc(0) // bnv
	BRANCH_FUNC_EQ    = CodeBranchFunc(1) // beq
	BRANCH_FUNC_NE    = CodeBranchFunc(2) // bne
	BRANCH_FUNC_LO    = CodeBranchFunc(3) // blo
	BRANCH_FUNC_GT    = CodeBranchFunc(4) // bgt
)

var codeBranchFuncName = map[CodeBranchFunc]string{
	BRANCH_FUNC_NEVER: "bnv",
	BRANCH_FUNC_EQ:    "beq",
	BRANCH_FUNC_NE:    "bne",
	BRANCH_FUNC_LO:    "blo",
	BRANCH_FUNC_GT:    "bgt",
}

func (fn CodeBranchFunc) String() string {
	name, ok := codeBranchFuncName[fn]
	if !ok {
		return fmt.Sprintf("CodeBranchFunc(%d)", uint32(fn))
	}
	return name
}

// Instruction is a single decoded instruction line.
type Instruction struct {
	Op       CodeOp
	Arg1     uint32
	Arg2     uint32
	Arg3     uint32 // Register for OP_ALU, 12-bit immediate otherwise.
	Function uint32 // Only decoded for op codes below OP_LOAD.
}

// AluFunc returns the function selector as an ALU operation.
func (code Instruction) AluFunc() CodeAluFunc {
	return CodeAluFunc(code.Function)
}

// BranchFunc returns the function selector as a branch comparison.
func (code Instruction) BranchFunc() CodeBranchFunc {
	return CodeBranchFunc(code.Function)
}

// Word returns the canonical 32-bit encoding of the instruction.
func (code Instruction) Word() (word uint32) {
	word = (uint32(code.Op)&0x7)<<29 | (code.Arg1&0x3f)<<23 | (code.Arg2&0x3f)<<17
	if code.Op == OP_ALU {
		word |= (code.Arg3 & 0x3f) << 11
	} else {
		word |= (code.Arg3 & 0xfff) << 5
	}
	if code.Op < OP_LOAD {
		word |= (code.Function & 0x7) << 2
	}
	return
}

// Line returns the canonical program text of the instruction, without a
// line terminator.
func (code Instruction) Line() string {
	return fmt.Sprintf("%032b", code.Word())
}

// String returns the disassembly of the instruction.
func (code Instruction) String() string {
	switch code.Op {
	case OP_ALU:
		return fmt.Sprintf("%v r%d, r%d, r%d", code.AluFunc(), code.Arg1, code.Arg2, code.Arg3)
	case OP_ALU_IMM:
		return fmt.Sprintf("%vi r%d, r%d, %d", code.AluFunc(), code.Arg1, code.Arg2, code.Arg3)
	case OP_BRANCH:
		return fmt.Sprintf("%v r%d, r%d, %d", code.BranchFunc(), code.Arg1, code.Arg2, code.Arg3)
	case OP_LOAD, OP_STORE:
		return fmt.Sprintf("%v r%d, r%d, %d", code.Op, code.Arg1, code.Arg2, code.Arg3)
	}

	return fmt.Sprintf("%v %d, %d, %d, %d", code.Op, code.Arg1, code.Arg2, code.Arg3, code.Function)
}
