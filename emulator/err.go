package emulator

import (
	"errors"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint16
	Err    error
}

// hasPc is true if the wrapped error already reports the pc.
func (err *ErrRuntime) hasPc() bool {
	return errors.As(err.Err, new(cpu.ErrOpcode)) || errors.As(err.Err, new(cpu.ErrFetch))
}

func (err *ErrRuntime) Error() string {
	msg := err.Err.Error()
	if !err.hasPc() {
		msg = f("pc $%04x: %v", err.Pc, msg)
	}

	if err.LineNo == 0 {
		return msg
	}
	return f("line %d %v", err.LineNo, msg)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
