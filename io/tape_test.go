package io

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Load(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		input string
		lines []string
	}){
		{"empty", "", nil},
		{"single", "0101\n", []string{"0101\n"}},
		{"unterminated", "01\n10", []string{"01\n", "10\n"}},
		{"crlf", "01\r\n10\r\n", []string{"01\n", "10\n"}},
		{"blank", "01\n\n10\n", []string{"01\n", "\n", "10\n"}},
		{"spaces_kept", " 01 \n", []string{" 01 \n"}},
	}

	for _, entry := range table {
		tape := &Tape{Input: strings.NewReader(entry.input)}
		prog, err := tape.Load()
		assert.NoError(err, entry.name)
		if assert.NotNil(prog, entry.name) {
			assert.Equal(entry.lines, prog.Lines, entry.name)
			assert.Equal(len(entry.lines), prog.Len(), entry.name)
		}
	}
}

type failReader struct {
	data string
	err  error
}

func (fr *failReader) Read(p []byte) (n int, err error) {
	if len(fr.data) == 0 {
		err = fr.err
		return
	}
	n = copy(p, fr.data)
	fr.data = fr.data[n:]
	return
}

func TestTape_Load_Error(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	tape := &Tape{Input: &failReader{data: "01\n10", err: boom}}

	prog, err := tape.Load()
	assert.Equal(boom, err)
	assert.Nil(prog)
}
