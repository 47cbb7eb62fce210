package cpu

import (
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Word(t *testing.T) {
	assert := assert.New(t)

	var state State
	assert.NoError(state.StoreWord(28, 0x11223344))
	assert.Equal([]byte{0x11, 0x22, 0x33, 0x44}, state.Memory[28:32])

	value, err := state.LoadWord(28)
	assert.NoError(err)
	assert.Equal(uint32(0x11223344), value)

	assert.Equal(ErrMemoryBounds, state.StoreWord(29, 1))
	_, err = state.LoadWord(MEMORY_SIZE)
	assert.Equal(ErrMemoryBounds, err)
}

func TestState_Reset(t *testing.T) {
	assert := assert.New(t)

	state := State{Pc: 3}
	state.Register[31] = 1
	state.Memory[31] = 1

	state.Reset()
	assert.Equal(State{}, state)
}

func TestState_Symbols(t *testing.T) {
	assert := assert.New(t)

	var state State
	state.Pc = 6
	state.Register[31] = 0xffffffff
	state.Memory[2] = 0x80

	symbols := maps.Collect(state.Symbols())
	assert.Len(symbols, 1+REGISTER_COUNT+MEMORY_SIZE)
	assert.Equal(uint32(6), symbols["pc"])
	assert.Equal(uint32(0xffffffff), symbols["r31"])
	assert.Equal(uint32(0), symbols["r0"])
	assert.Equal(uint32(0x80), symbols["m2"])

	// The iterator holds a snapshot.
	seq := state.Symbols()
	state.Register[0] = 9
	assert.Equal(uint32(0), maps.Collect(seq)["r0"])
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	var state State
	state.Register[10] = 0x12345678
	state.Memory[4] = 0xab

	text := state.String()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	assert.Len(lines, 1+REGISTER_COUNT+MEMORY_SIZE/WORD_SIZE)
	assert.Contains(text, "  r10: 1234_5678\n")
	assert.Contains(text, "  m04: AB 00 00 00\n")
}
