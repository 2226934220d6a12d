package cpu

import (
	"errors"
	"strings"
)

// Disassemble decodes an entire program into a listing.
//
// Bytes without an opcode table entry are listed as .byte and decoding
// continues. A truncated final instruction stops decoding; the listing so
// far is returned along with the ErrFetch.
func Disassemble(program []byte) (prog *Program, err error) {
	prog = &Program{}

	if len(program) > PROGRAM_LIMIT {
		err = ErrProgramSize
		return
	}

	var pc uint16
	for int(pc) < len(program) {
		inst, next, derr := Decode(program, pc)
		switch {
		case derr == nil:
		case errors.Is(derr, ErrOpcodeUnimplemented):
			next = pc + 1
		default:
			err = derr
			return
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			Pc:    int(pc),
			Words: strings.Fields(inst.String()),
			Bytes: inst.Bytes(),
		})

		pc = next
	}

	return
}
