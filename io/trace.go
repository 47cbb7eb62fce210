package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ezrec/bitcpu/cpu"
)

// TraceFormat selects how trace records are written.
type TraceFormat int

const (
	FORMAT_TEXT = TraceFormat(0) // text
	FORMAT_JSON = TraceFormat(1) // json
	FORMAT_NONE = TraceFormat(2) // none
)

var traceFormatName = [...]string{
	FORMAT_TEXT: "text",
	FORMAT_JSON: "json",
	FORMAT_NONE: "none",
}

func (tf TraceFormat) String() string {
	if tf < 0 || int(tf) >= len(traceFormatName) {
		return fmt.Sprintf("TraceFormat(%d)", int(tf))
	}
	return traceFormatName[tf]
}

// ParseTraceFormat returns the trace format with the given name.
func ParseTraceFormat(name string) (tf TraceFormat, err error) {
	for n, str := range traceFormatName {
		if str == name {
			tf = TraceFormat(n)
			return
		}
	}

	err = ErrTraceFormat(name)
	return
}

const (
	colorChanged = "\033[1;33m"
	colorReset   = "\033[0m"
)

// Trace writes one record per executed instruction.
type Trace struct {
	Output io.Writer
	Format TraceFormat
	Color  bool // If set, highlights values changed by the instruction.
}

// traceRecord is the JSON form of a trace record.
type traceRecord struct {
	Pc        int      `json:"pc"`
	OpCode    uint32   `json:"op_code"`
	Arg1      uint32   `json:"arg1"`
	Arg2      uint32   `json:"arg2"`
	Arg3      uint32   `json:"arg3"`
	Function  uint32   `json:"function"`
	Text      string   `json:"text"`
	Registers []uint32 `json:"registers"`
	Memory    []uint32 `json:"memory"`
}

// Record writes the trace of code, which moved the machine from prev to next.
func (tr *Trace) Record(prev, next cpu.State, code cpu.Instruction) (err error) {
	switch tr.Format {
	case FORMAT_NONE:
		return
	case FORMAT_JSON:
		rec := traceRecord{
			Pc:        next.Pc,
			OpCode:    uint32(code.Op),
			Arg1:      code.Arg1,
			Arg2:      code.Arg2,
			Arg3:      code.Arg3,
			Function:  code.Function,
			Text:      code.String(),
			Registers: next.Register[:],
			Memory:    widen(next.Memory[:]),
		}
		err = json.NewEncoder(tr.Output).Encode(&rec)
		return
	case FORMAT_TEXT:
		var sb strings.Builder
		fmt.Fprintf(&sb, "pc=%d, op_code=%d, arg1=%d, arg2=%d, arg3=%d, function=%d ; %v\n",
			next.Pc, uint32(code.Op), code.Arg1, code.Arg2, code.Arg3, code.Function, code)
		sb.WriteString(" registers=")
		tr.writeValues(&sb, prev.Register[:], next.Register[:])
		sb.WriteString("\n memory=")
		tr.writeValues(&sb, widen(prev.Memory[:]), widen(next.Memory[:]))
		sb.WriteString("\n")
		_, err = io.WriteString(tr.Output, sb.String())
		return
	}

	err = ErrTraceFormat(tr.Format.String())
	return
}

// writeValues writes next as a bracketed list, highlighting entries that
// differ from prev when colour is enabled.
func (tr *Trace) writeValues(sb *strings.Builder, prev, next []uint32) {
	sb.WriteString("[")
	for n, value := range next {
		if n > 0 {
			sb.WriteString(", ")
		}
		if tr.Color && prev[n] != value {
			fmt.Fprintf(sb, "%s%d%s", colorChanged, value, colorReset)
		} else {
			fmt.Fprintf(sb, "%d", value)
		}
	}
	sb.WriteString("]")
}

func widen(data []byte) (values []uint32) {
	values = make([]uint32, len(data))
	for n, b := range data {
		values[n] = uint32(b)
	}
	return
}
