// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/bitcpu/emulator"
	bcio "github.com/ezrec/bitcpu/io"
)

// options collected from the command line.
type options struct {
	verbose   bool
	trace     string
	breakExpr string
	stepLimit int
	color     string
}

func newRootCmd(stdout io.Writer) (cmd *cobra.Command) {
	opts := &options{}

	cmd = &cobra.Command{
		Use:           "bitcpu <program>",
		Short:         "Run a binary-encoded bitcpu program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
	flags.StringVar(&opts.trace, "trace", "text", "trace format: text, json or none")
	flags.StringVar(&opts.breakExpr, "break", "", "halt once this expression holds")
	flags.IntVar(&opts.stepLimit, "step-limit", 0, "maximum instructions to run (0 is unlimited)")
	flags.StringVar(&opts.color, "color", "auto", "highlight changes: auto, always or never")

	return
}

// useColor decides trace colouring for the output writer.
func useColor(mode string, stdout io.Writer) (color bool, err error) {
	switch mode {
	case "always":
		color = true
	case "never":
		color = false
	case "auto":
		if f, ok := stdout.(*os.File); ok {
			color = term.IsTerminal(int(f.Fd()))
		}
	default:
		err = fmt.Errorf("'%v' is not a color mode", mode)
	}

	return
}

func run(stdout io.Writer, path string, opts *options) (err error) {
	format, err := bcio.ParseTraceFormat(opts.trace)
	if err != nil {
		return
	}

	color, err := useColor(opts.color, stdout)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose
	emu.StepLimit = opts.stepLimit

	if len(opts.breakExpr) != 0 {
		emu.Break, err = emulator.NewBreakpoint(opts.breakExpr)
		if err != nil {
			return
		}
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	tape := &bcio.Tape{Input: inf}
	emu.Program, err = tape.Load()
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	emu.Trace = &bcio.Trace{
		Output: stdout,
		Format: format,
		Color:  color,
	}

	emu.Reset()

	err = emu.Run()

	return
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitcpu: ")

	cmd := newRootCmd(os.Stdout)
	err := cmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
