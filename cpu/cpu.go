package cpu

import (
	"fmt"
	"iter"
	"maps"

	log "github.com/sirupsen/logrus"
)

// PROGRAM_LIMIT is the largest program, in bytes, the CPU will run. The
// program counter never needs to wrap.
const PROGRAM_LIMIT = 0xffff

var _cpu_defines = map[string]string{
	"PROGRAM_LIMIT":   fmt.Sprintf("0x%x", PROGRAM_LIMIT),
	"STATUS_ZERO":     fmt.Sprintf("0x%02x", STATUS_ZERO),
	"STATUS_NEGATIVE": fmt.Sprintf("0x%02x", STATUS_NEGATIVE),
}

func init() {
	for code, entry := range opcodeTable {
		_cpu_defines[entry.Name] = fmt.Sprintf("0x%02x", code)
	}
}

// Cpu is the simulation context for the processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A      uint8  // Accumulator.
	X      uint8  // Index register.
	Status uint8  // Status flags.
	Pc     uint16 // Offset of the next byte to fetch.

	Ticks int // Instructions executed since Reset.
}

// NewCpu creates a new CPU with all registers zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "a", "x", "status", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "x":
			strval = fmt.Sprintf("%02X", cpu.X)
		case "status":
			strval = fmt.Sprintf("%02X %v", cpu.Status, StatusString(cpu.Status))
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers and status flags.
// - Zeros the program counter and tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Debugf("cpu: reset")
	}

	cpu.A = 0
	cpu.X = 0
	cpu.Status = 0
	cpu.Pc = 0
	cpu.Ticks = 0
}

// executeTable maps operations to their effect on the register file.
// It returns true when execution should halt.
var executeTable = map[CodeOp]func(cpu *Cpu, inst Instruction) (halt bool){
	OP_BRK: func(cpu *Cpu, inst Instruction) bool {
		return true
	},
	OP_LDA_IMM: func(cpu *Cpu, inst Instruction) bool {
		cpu.WriteRegister(REG_A, inst.Operand)
		return false
	},
	OP_TAX: func(cpu *Cpu, inst Instruction) bool {
		cpu.WriteRegister(REG_X, cpu.A)
		return false
	},
	OP_INX: func(cpu *Cpu, inst Instruction) bool {
		cpu.IncrementRegister(REG_X)
		return false
	},
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(inst Instruction) (halt bool, err error) {
	if cpu.Verbose {
		log.Debugf("%04x: %v", cpu.Pc, inst)
	}

	exec, ok := executeTable[inst.Op]
	if !ok {
		err = ErrOpcode{Pc: cpu.Pc, Opcode: inst.Opcode}
		return
	}

	halt = exec(cpu, inst)

	return
}

// Step fetches, decodes and executes the instruction at Pc.
//
// On a fault the registers, Pc and Ticks are left unchanged.
func (cpu *Cpu) Step(program []byte) (halted bool, err error) {
	inst, next, err := Decode(program, cpu.Pc)
	if err != nil {
		return
	}

	halted, err = cpu.Execute(inst)
	if err != nil {
		return
	}

	cpu.Pc = next
	cpu.Ticks += 1

	return
}

// Run executes program from its first byte until a BRK instruction.
// Registers other than Pc keep the values they held before the call.
func (cpu *Cpu) Run(program []byte) (err error) {
	if len(program) > PROGRAM_LIMIT {
		err = ErrProgramSize
		return
	}

	cpu.Pc = 0

	for {
		var halted bool
		halted, err = cpu.Step(program)
		if err != nil || halted {
			return
		}
	}
}
