package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Link is a byte of an Opcode that refers to a label not yet defined.
type Link struct {
	Index  int    // Offset of the byte in Bytes.
	Label  string // Label to link.
	Select string // "<" or ">" to link the low or high byte of Label.
}

// Opcode represents a line of assembled code with its source location and generated bytes.
type Opcode struct {
	LineNo int
	Pc     int
	Words  []string
	Bytes  []byte
	Link   []Link
}

// Program is an assembled or disassembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates a single byte of a program listing.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode containing pc, and the index of pc within it.
// The Opcode is nil if no opcode contains pc.
func (prog *Program) Debug(pc uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(pc) >= op.Pc && int(pc) < op.Pc+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(pc) - op.Pc,
			}
			break
		}
	}

	return
}

// Binary returns the program image.
func (prog *Program) Binary() (bins []byte) {
	for _, data := range prog.Bytes() {
		bins = append(bins, data)
	}

	return
}

// Bytes iterates over every byte of the program, with its pc.
func (prog *Program) Bytes() iter.Seq2[uint16, byte] {
	return func(yield func(pc uint16, data byte) bool) {
		for _, op := range prog.Opcodes {
			pc := uint16(op.Pc)
			for n, data := range op.Bytes {
				if !yield(pc+uint16(n), data) {
					return
				}
			}
		}
	}
}

// String returns the program as a listing, one opcode per line.
func (prog *Program) String() string {
	var sb strings.Builder

	for _, op := range prog.Opcodes {
		hex := make([]string, len(op.Bytes))
		for n, data := range op.Bytes {
			hex[n] = fmt.Sprintf("%02x", data)
		}
		fmt.Fprintf(&sb, "%04x  %-8s  %v\n", op.Pc, strings.Join(hex, " "), strings.Join(op.Words, " "))
	}

	return sb.String()
}
