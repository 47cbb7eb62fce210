// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/bitcpu/cpu"
	"github.com/ezrec/bitcpu/io"
)

// Emulator state. Program + machine state + trace output.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Program *cpu.Program // Reference to the running program.
	State   cpu.State    // Current machine state.

	Trace     *io.Trace   // Trace output; nil disables tracing.
	Break     *Breakpoint // Halt once this holds; nil never breaks.
	StepLimit int         // Maximum steps per run; zero is unlimited.

	Steps int // Instructions executed since reset.
}

// NewEmulator creates a new emulator, with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	return
}

// Reset the machine state and step counter.
func (emu *Emulator) Reset() {
	emu.State.Reset()
	emu.Steps = 0

	if emu.Verbose {
		log.Printf("emulator: reset, %d lines", emu.Program.Len())
	}
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.State.Pc
}

// Halted returns true once the program counter has left the program.
func (emu *Emulator) Halted() bool {
	return !emu.Program.Contains(emu.State.Pc)
}

// Tick performs a single instruction cycle of the emulator.
//
// done is set when the program counter is outside the program, or the
// break expression holds after the cycle. A decode or execution fault
// leaves the machine state unchanged.
func (emu *Emulator) Tick() (done bool, err error) {
	pc := emu.State.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.Halted() {
		if emu.Verbose {
			log.Printf("emulator: halt at pc %d after %d steps", pc, emu.Steps)
		}
		done = true
		return
	}

	if emu.StepLimit > 0 && emu.Steps >= emu.StepLimit {
		err = ErrStepLimit
		return
	}

	next, code, err := cpu.Step(emu.Program, emu.State)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("%03d: %v", pc, code)
	}

	prev := emu.State
	emu.State = next
	emu.Steps++

	if emu.Trace != nil {
		err = emu.Trace.Record(prev, next, code)
		if err != nil {
			return
		}
	}

	if emu.Break != nil {
		done, err = emu.Break.Eval(next, code)
		if err != nil {
			return
		}
		if done && emu.Verbose {
			log.Printf("emulator: break '%v' at pc %d", emu.Break.Expr, next.Pc)
		}
	}

	return
}

// Run ticks the emulator until it is done, or fails.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
