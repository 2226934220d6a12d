package cpu

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOpcodeUnimplemented = errors.New(f("opcode unimplemented"))
	ErrFetchBounds         = errors.New(f("fetch out of bounds"))
	ErrProgramSize         = errors.New(f("program too large"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrDirectiveSyntax = errors.New(f("directive syntax"))
	ErrDirectiveValue  = errors.New(f("directive value out of range"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandRange    = errors.New(f("operand out of range"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrAddressingMode  = errors.New(f("addressing mode unsupported"))
)

// ErrOpcode is returned when the byte at Pc has no opcode table entry.
type ErrOpcode struct {
	Pc     uint16
	Opcode byte
}

func (eo ErrOpcode) Error() string {
	return f("pc $%04x: bad opcode $%02x", eo.Pc, eo.Opcode)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeUnimplemented
}

// ErrFetch is returned when an instruction of Size bytes starting at Pc
// extends past the end of the program.
type ErrFetch struct {
	Pc   uint16
	Size int
}

func (ef ErrFetch) Error() string {
	return f("pc $%04x: fetch of %d byte(s) out of bounds", ef.Pc, ef.Size)
}

func (ef ErrFetch) Is(err error) (ok bool) {
	_, ok = err.(ErrFetch)
	return
}

func (ef ErrFetch) Unwrap() error {
	return ErrFetchBounds
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
