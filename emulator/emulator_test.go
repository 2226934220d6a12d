package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
}

func doAssemble(emu *Emulator, program []string, t *testing.T) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	err = emu.Reset()
	assert.NoError(err)
}

func doRunSingle(emu *Emulator, program []string, t *testing.T) {
	assert := assert.New(t)

	doAssemble(emu, program, t)

	for n, op := range emu.Program.Opcodes {
		here := program[op.LineNo-1]
		assert.Equal(op.LineNo, emu.LineNo(), here)
		assert.Equal(uint16(op.Pc), emu.Cpu.Pc, here)
		debug := emu.Program.Debug(emu.Cpu.Pc)
		assert.Equal(op.Bytes, debug.Bytes, here)

		done, err := emu.Tick()
		assert.NoError(err, here)
		if err != nil {
			t.Log(emu.Cpu.String())
			t.Fatalf("%v", err)
		}
		assert.Equal(n == len(emu.Program.Opcodes)-1, done, here)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorRegisters(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"lda #$c0", // a
		"tax",      // x = a
		"inx",      // x + 1
		"brk",
	}

	doRunSingle(emu, program, t)

	assert.Equal(uint8(0xc0), emu.Cpu.A)
	assert.Equal(uint8(0xc1), emu.Cpu.X)
	assert.True(emu.Cpu.ReadFlag(cpu.FLAG_NEGATIVE))
	assert.Equal(4, emu.Ticks())
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		".byte OP_LDA_IMM, STATUS_NEGATIVE",
		".byte OP_TAX",
		".byte $(OP_BRK + ROM_ORIGIN)",
	}

	doAssemble(emu, program, t)
	assert.NoError(emu.Run())

	assert.Equal(uint8(0x80), emu.Cpu.X)
	assert.Equal(uint16(4), emu.Cpu.Pc)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"lda #1",
		"",
		".byte $ff ; not an opcode",
		"brk",
	}

	doAssemble(emu, program, t)

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrOpcodeUnimplemented)

	var er *ErrRuntime
	if assert.True(errors.As(err, &er)) {
		assert.Equal(3, er.LineNo)
		assert.Equal(uint16(2), er.Pc)
		assert.Equal("line 3 pc $0002: bad opcode $ff", er.Error())
	}
	assert.Equal(uint8(1), emu.Cpu.A)
}

func TestEmulatorMissingBrk(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doAssemble(emu, []string{"inx", "inx"}, t)

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrFetchBounds)

	var er *ErrRuntime
	if assert.True(errors.As(err, &er)) {
		assert.Equal(0, er.LineNo)
		assert.Equal(uint16(2), er.Pc)
		assert.Equal("pc $0002: fetch of 1 byte(s) out of bounds", er.Error())
	}
	assert.Equal(uint8(2), emu.Cpu.X)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(emu, []string{"lda #7", "tax", "brk"}, t)

	assert.NoError(emu.Run())
	first := *emu.Cpu

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)

	assert.NoError(emu.Reset())
	assert.Equal(uint8(0), emu.Cpu.A)
	assert.Equal(0, emu.Ticks())

	assert.NoError(emu.Run())
	assert.Equal(first, *emu.Cpu)
}

func TestEmulatorEmpty(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.Reset())

	done, err := emu.Tick()
	assert.False(done)
	assert.ErrorIs(err, cpu.ErrFetchBounds)
}
