// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs an assembled program on the CPU, one instruction
// at a time, reporting faults against the program listing.
package emulator

import (
	"fmt"
	"iter"
	"maps"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/internal"
)

const (
	ROM_ORIGIN = 0x0000 // Pc of the first program byte.
)

var _emulator_defines = map[string]string{
	"ROM_ORIGIN": fmt.Sprintf("0x%04x", ROM_ORIGIN),
}

// Emulator state. CPU + program listing + ROM image.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Rom []byte // Program image loaded by Reset.

	halted bool
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU and load the program listing into ROM.
func (emu *Emulator) Reset() (err error) {
	emu.Rom = emu.Program.Binary()
	if len(emu.Rom) > cpu.PROGRAM_LIMIT {
		err = cpu.ErrProgramSize
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Pc = ROM_ORIGIN
	emu.halted = false

	if emu.Verbose {
		log.Debugf("emulator: loaded %d byte(s)", len(emu.Rom))
	}

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator. done is set once a
// BRK has executed.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.halted {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	done, err = emu.Cpu.Step(emu.Rom)
	if err != nil {
		return
	}

	emu.halted = done

	return
}

// Run ticks the emulator until done, or a fault.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
