package io

import (
	"bufio"
	"io"
	"strings"

	"github.com/ezrec/bitcpu/cpu"
)

// Tape reads a program from a text stream, one instruction per line.
type Tape struct {
	Input io.Reader
}

// Load reads every line of the input into a program. Line n of the input
// is program address n.
//
// Each loaded line ends in exactly one '\n': '\r\n' terminators are
// normalized, and an unterminated final line is terminated.
func (tc *Tape) Load() (prog *cpu.Program, err error) {
	prog = &cpu.Program{}

	rd := bufio.NewReader(tc.Input)
	for {
		var line string
		line, err = rd.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			prog.Lines = append(prog.Lines, line+"\n")
		}
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			prog = nil
			return
		}
	}

	return
}
