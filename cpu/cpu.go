package cpu

// registersValid returns true if every index names a register.
func registersValid(index ...uint32) bool {
	for _, n := range index {
		if n >= REGISTER_COUNT {
			return false
		}
	}
	return true
}

// Step performs a single fetch, decode and execute cycle.
// On any error, next is the unmodified input state.
func Step(prog *Program, state State) (next State, code Instruction, err error) {
	next = state

	line, ok := prog.Fetch(state.Pc)
	if !ok {
		err = ErrPcRange
		return
	}

	code, err = Decode(line)
	if err != nil {
		return
	}

	next, err = Execute(code, state)
	return
}

// Execute executes a single decoded instruction.
// All bounds are checked before the returned state is modified, and on
// error next is the unmodified input state.
func Execute(code Instruction, state State) (next State, err error) {
	defer func() {
		if err != nil {
			next = state
			err = &ErrExecution{Instruction: code, Err: err}
		}
	}()

	next = state
	next.Pc = state.Pc + 1

	switch code.Op {
	case OP_ALU:
		if !registersValid(code.Arg1, code.Arg2, code.Arg3) {
			err = ErrRegisterBounds
			return
		}
		var value uint32
		value, err = doAlu(code.AluFunc(), state.Register[code.Arg2], state.Register[code.Arg3])
		if err != nil {
			return
		}
		next.Register[code.Arg1] = value
	case OP_ALU_IMM:
		if !registersValid(code.Arg1, code.Arg2) {
			err = ErrRegisterBounds
			return
		}
		var value uint32
		value, err = doAlu(code.AluFunc(), state.Register[code.Arg2], code.Arg3)
		if err != nil {
			return
		}
		next.Register[code.Arg1] = value
	case OP_BRANCH:
		if !registersValid(code.Arg1, code.Arg2) {
			err = ErrRegisterBounds
			return
		}
		var taken bool
		taken, err = doBranch(code.BranchFunc(), state.Register[code.Arg1], state.Register[code.Arg2])
		if err != nil {
			return
		}
		if taken {
			next.Pc = int(code.Arg3)
		}
	case OP_LOAD:
		if !registersValid(code.Arg1, code.Arg2) {
			err = ErrRegisterBounds
			return
		}
		addr := uint64(state.Register[code.Arg2]) + uint64(code.Arg3)
		var value uint32
		value, err = next.LoadWord(addr)
		if err != nil {
			return
		}
		next.Register[code.Arg1] = value
	case OP_STORE:
		if !registersValid(code.Arg1, code.Arg2) {
			err = ErrRegisterBounds
			return
		}
		addr := uint64(state.Register[code.Arg2]) + uint64(code.Arg3)
		err = next.StoreWord(addr, state.Register[code.Arg1])
		if err != nil {
			return
		}
	default:
		err = ErrOpcodeInvalid
		return
	}

	return
}

// doAlu performs the requested ALU action, and returns the masked output value.
func doAlu(fn CodeAluFunc, input uint32, value uint32) (output uint32, err error) {
	a := uint64(input)
	b := uint64(value)

	var result uint64
	switch fn {
	case ALU_FUNC_ADD:
		result = a + b
	case ALU_FUNC_SUB:
		result = a - b
	case ALU_FUNC_MUL:
		result = a * b
	case ALU_FUNC_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		result = a / b
	case ALU_FUNC_AND:
		result = a & b
	case ALU_FUNC_OR:
		result = a | b
	case ALU_FUNC_XOR:
		result = a ^ b
	default:
		err = ErrFunctionInvalid
		return
	}

	output = uint32(result & WORD_MASK)
	return
}

// doBranch evaluates a branch comparison. Registers compare unsigned.
func doBranch(fn CodeBranchFunc, a uint32, b uint32) (taken bool, err error) {
	switch fn {
	case BRANCH_FUNC_NEVER:
		taken = false
	case BRANCH_FUNC_EQ:
		taken = a == b
	case BRANCH_FUNC_NE:
		taken = a != b
	case BRANCH_FUNC_LO:
		taken = a < b
	case BRANCH_FUNC_GT:
		taken = a > b
	default:
		err = ErrFunctionInvalid
	}

	return
}
