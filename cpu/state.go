package cpu

import (
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/bitcpu/internal"
)

// Machine geometry.
const (
	REGISTER_COUNT = 32         // Number of general purpose registers.
	MEMORY_SIZE    = 32         // Bytes of memory.
	WORD_SIZE      = 4          // Bytes per memory word.
	WORD_MASK      = 0xFFFFFFFF // ALU result mask.
)

// State is the complete machine state threaded through each cycle.
type State struct {
	Register [REGISTER_COUNT]uint32 // Register bank.
	Memory   [MEMORY_SIZE]byte      // Byte addressable memory.
	Pc       int                    // Index of the next program line.
}

// Reset the state to power-on values.
func (state *State) Reset() {
	*state = State{}
}

// LoadWord reads the big-endian word at addr.
func (state *State) LoadWord(addr uint64) (value uint32, err error) {
	if addr+WORD_SIZE > MEMORY_SIZE {
		err = ErrMemoryBounds
		return
	}

	value = binary.BigEndian.Uint32(state.Memory[addr : addr+WORD_SIZE])
	return
}

// StoreWord writes value as a big-endian word at addr.
func (state *State) StoreWord(addr uint64, value uint32) (err error) {
	if addr+WORD_SIZE > MEMORY_SIZE {
		err = ErrMemoryBounds
		return
	}

	binary.BigEndian.PutUint32(state.Memory[addr:addr+WORD_SIZE], value)
	return
}

// Symbols returns an iterator over the named machine values: pc, r0-r31
// and m0-m31.
func (state *State) Symbols() iter.Seq2[string, uint32] {
	registers := state.Register
	memory := make([]uint32, len(state.Memory))
	for n, b := range state.Memory {
		memory[n] = uint32(b)
	}

	return internal.IterSeq2Concat(
		maps.All(map[string]uint32{"pc": uint32(state.Pc)}),
		internal.IterSeq2Indexed("r", registers[:]),
		internal.IterSeq2Indexed("m", memory),
	)
}

// String returns the machine state as a register and memory dump.
func (state *State) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "   pc: %d\n", state.Pc)
	for n, val := range state.Register {
		fmt.Fprintf(&sb, "% 5s: %04X_%04X\n", fmt.Sprintf("r%d", n), val>>16, val&0xffff)
	}
	for n := 0; n < len(state.Memory); n += WORD_SIZE {
		fmt.Fprintf(&sb, "  m%02d: % X\n", n, state.Memory[n:n+WORD_SIZE])
	}

	text = sb.String()
	return
}
