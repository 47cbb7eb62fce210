// Package cpu implements the decoder and executor for the bitcpu machine.
//
// The machine has 32 unsigned 32-bit registers (r0-r31), 32 bytes of
// memory addressed as big-endian words, and a program counter indexing the
// lines of a text program. Each line is a string of '0' and '1' characters
// holding a 3-bit op code, two 6-bit register operands, a third operand that
// is either a 6-bit register or a 12-bit immediate, and a 3-bit function
// selector.
//
// A cycle is Step: fetch the line at the program counter, Decode it, and
// Execute it against a State value. State is passed and returned by value,
// so a failed cycle never leaves a partially updated machine behind.
package cpu
