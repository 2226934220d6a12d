package cpu

import (
	"fmt"
	"strings"
)

// CodeOp is a decoded operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_UNKNOWN = CodeOp(0) // .byte
	OP_BRK     = CodeOp(1) // brk
	OP_LDA_IMM = CodeOp(2) // lda
	OP_TAX     = CodeOp(3) // tax
	OP_INX     = CodeOp(4) // inx
)

// CodeMode is an addressing mode. It determines how many operand bytes
// follow the opcode.
type CodeMode int

//go:generate go tool stringer -linecomment -type=CodeMode
const (
	MODE_IMPLIED   = CodeMode(0) // implied
	MODE_IMMEDIATE = CodeMode(1) // immediate
)

// OperandSize returns the number of operand bytes for the mode.
func (mode CodeMode) OperandSize() int {
	switch mode {
	case MODE_IMMEDIATE:
		return 1
	}
	return 0
}

// opcodeEntry is one row of the opcode table.
type opcodeEntry struct {
	Op       CodeOp
	Name     string // Define name of the opcode byte.
	Mnemonic string
	Mode     CodeMode
}

// opcodeTable maps opcode bytes to operations. New instructions are added
// here and in executeTable.
var opcodeTable = map[byte]opcodeEntry{
	0x00: {OP_BRK, "OP_BRK", "brk", MODE_IMPLIED},
	0xA9: {OP_LDA_IMM, "OP_LDA_IMM", "lda", MODE_IMMEDIATE},
	0xAA: {OP_TAX, "OP_TAX", "tax", MODE_IMPLIED},
	0xE8: {OP_INX, "OP_INX", "inx", MODE_IMPLIED},
}

// lookupOpcode finds the opcode byte for a mnemonic and addressing mode.
func lookupOpcode(mnemonic string, mode CodeMode) (opcode byte, ok bool) {
	mnemonic = strings.ToLower(mnemonic)
	for code, entry := range opcodeTable {
		if entry.Mnemonic == mnemonic && entry.Mode == mode {
			return code, true
		}
	}
	return
}

// knownMnemonic returns true if any table row uses the mnemonic.
func knownMnemonic(mnemonic string) bool {
	mnemonic = strings.ToLower(mnemonic)
	for _, entry := range opcodeTable {
		if entry.Mnemonic == mnemonic {
			return true
		}
	}
	return false
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Op      CodeOp
	Opcode  byte     // Raw opcode byte.
	Mode    CodeMode // Addressing mode.
	Operand uint8    // Immediate value, for MODE_IMMEDIATE.
}

// Size returns the encoded width of the instruction in bytes.
func (inst Instruction) Size() int {
	return 1 + inst.Mode.OperandSize()
}

// Bytes returns the encoding of the instruction.
func (inst Instruction) Bytes() (out []byte) {
	out = append(out, inst.Opcode)
	if inst.Mode == MODE_IMMEDIATE {
		out = append(out, inst.Operand)
	}
	return
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	entry, ok := opcodeTable[inst.Opcode]
	if !ok || inst.Op == OP_UNKNOWN {
		return fmt.Sprintf(".byte $%02x", inst.Opcode)
	}

	switch entry.Mode {
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%v #$%02x", entry.Mnemonic, inst.Operand)
	default:
		return entry.Mnemonic
	}
}

// Decode decodes the instruction at pc. It returns the instruction and
// the pc of the following instruction.
//
// An opcode byte without a table entry decodes as OP_UNKNOWN and returns
// ErrOpcode. An instruction that does not fit in the program returns
// ErrFetch. In both cases next is pc.
func Decode(program []byte, pc uint16) (inst Instruction, next uint16, err error) {
	next = pc

	limit := min(len(program), PROGRAM_LIMIT)

	if int(pc) >= limit {
		err = ErrFetch{Pc: pc, Size: 1}
		return
	}

	opcode := program[pc]
	entry, ok := opcodeTable[opcode]
	if !ok {
		inst = Instruction{Op: OP_UNKNOWN, Opcode: opcode}
		err = ErrOpcode{Pc: pc, Opcode: opcode}
		return
	}

	inst = Instruction{Op: entry.Op, Opcode: opcode, Mode: entry.Mode}

	size := inst.Size()
	if int(pc)+size > limit {
		err = ErrFetch{Pc: pc, Size: size}
		return
	}

	if entry.Mode == MODE_IMMEDIATE {
		inst.Operand = program[int(pc)+1]
	}

	next = pc + uint16(size)

	return
}
