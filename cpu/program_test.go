package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Pc: 0, Words: []string{"lda", "#$10"}, Bytes: []byte{0xa9, 0x10}},
			{LineNo: 2, Pc: 2, Words: []string{"tax"}, Bytes: []byte{0xaa}},
			{LineNo: 4, Pc: 3, Words: []string{"brk"}, Bytes: []byte{0x00}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.Opcode.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Pc: 0, Words: []string{"brk"}, Bytes: []byte{0x00}},
		},
	}

	dbg := prog.Debug(10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Pc: 0, Words: []string{"lda", "#$10"}, Bytes: []byte{0xa9, 0x10}},
			{LineNo: 2, Pc: 2, Words: []string{".byte", "1,", "2"}, Bytes: []byte{0x01, 0x02}},
		},
	}

	assert.Equal([]byte{0xa9, 0x10, 0x01, 0x02}, prog.Binary())

	var pcs []uint16
	for pc := range prog.Bytes() {
		pcs = append(pcs, pc)
		if pc == 2 {
			break
		}
	}
	assert.Equal([]uint16{0, 1, 2}, pcs)
}

func TestProgram_Binary_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.Empty(prog.Binary())
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Pc: 0, Words: []string{"lda", "#$10"}, Bytes: []byte{0xa9, 0x10}},
			{LineNo: 2, Pc: 2, Words: []string{"brk"}, Bytes: []byte{0x00}},
		},
	}

	lines := strings.Split(strings.TrimSuffix(prog.String(), "\n"), "\n")
	assert.Equal([]string{
		"0000  a9 10     lda #$10",
		"0002  00        brk",
	}, lines)
}
