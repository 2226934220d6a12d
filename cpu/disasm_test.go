package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	prog, err := Disassemble([]byte{0xa9, 0xc0, 0xaa, 0xe8, 0xff, 0x00})
	assert.NoError(err)

	expected := []Opcode{
		{Pc: 0, Words: []string{"lda", "#$c0"}, Bytes: []byte{0xa9, 0xc0}},
		{Pc: 2, Words: []string{"tax"}, Bytes: []byte{0xaa}},
		{Pc: 3, Words: []string{"inx"}, Bytes: []byte{0xe8}},
		{Pc: 4, Words: []string{".byte", "$ff"}, Bytes: []byte{0xff}},
		{Pc: 5, Words: []string{"brk"}, Bytes: []byte{0x00}},
	}
	opEqual(t, expected, prog.Opcodes)

	assert.Equal([]byte{0xa9, 0xc0, 0xaa, 0xe8, 0xff, 0x00}, prog.Binary())
}

func TestDisassemble_Truncated(t *testing.T) {
	assert := assert.New(t)

	prog, err := Disassemble([]byte{0xaa, 0xa9})
	assert.ErrorIs(err, ErrFetchBounds)
	assert.Equal(1, len(prog.Opcodes))
	assert.Equal([]string{"tax"}, prog.Opcodes[0].Words)
}

func TestDisassemble_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := Disassemble(nil)
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal("", prog.String())
}
