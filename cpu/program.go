package cpu

// Program is the ordered list of instruction lines. Line n is address n.
type Program struct {
	Lines []string
}

// Len returns the number of program lines.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Lines)
}

// Contains returns true if pc addresses a program line.
func (prog *Program) Contains(pc int) bool {
	return pc >= 0 && pc < prog.Len()
}

// Fetch returns the line addressed by pc.
func (prog *Program) Fetch(pc int) (line string, ok bool) {
	if !prog.Contains(pc) {
		return
	}

	line = prog.Lines[pc]
	ok = true
	return
}
