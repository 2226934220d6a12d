package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/emulator"
)

// assembleFile assembles a source file, with the emulator defines predefined.
func assembleFile(emu *emulator.Emulator, path string, verbose bool) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(inf)
	return
}

// loadBinary reads a raw program image, and lists it.
func loadBinary(path string) (prog *cpu.Program, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	prog, err = cpu.Disassemble(data)
	if err != nil {
		// Keep the truncated tail so it faults at run time.
		log.Warnf("%v: %v", path, err)
		err = nil
		pc := 0
		if n := len(prog.Opcodes); n > 0 {
			last := prog.Opcodes[n-1]
			pc = last.Pc + len(last.Bytes)
		}
		prog.Opcodes = append(prog.Opcodes, cpu.Opcode{
			Pc:    pc,
			Words: []string{".byte"},
			Bytes: data[pc:],
		})
	}

	return
}

// loadProgram loads either a binary image or an assembly source file.
func loadProgram(emu *emulator.Emulator, path string, binary bool, verbose bool) (prog *cpu.Program, err error) {
	if binary {
		return loadBinary(path)
	}

	return assembleFile(emu, path, verbose)
}
