package cpu

// Register selects a register of the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A = Register(0) // a
	REG_X = Register(1) // x
)

// ReadRegister returns the value of a register.
func (cpu *Cpu) ReadRegister(target Register) (value uint8) {
	switch target {
	case REG_A:
		value = cpu.A
	case REG_X:
		value = cpu.X
	default:
		panic(target)
	}
	return
}

// WriteRegister stores value into the target register, then sets the
// Zero and Negative flags from the stored value.
func (cpu *Cpu) WriteRegister(target Register, value uint8) {
	switch target {
	case REG_A:
		cpu.A = value
	case REG_X:
		cpu.X = value
	default:
		panic(target)
	}

	cpu.WriteFlag(FLAG_ZERO, value == 0)
	cpu.WriteFlag(FLAG_NEGATIVE, value&STATUS_NEGATIVE != 0)
}

// IncrementRegister adds one to the target register, wrapping at 8 bits.
// Flags are updated as for WriteRegister; there is no carry.
func (cpu *Cpu) IncrementRegister(target Register) {
	cpu.WriteRegister(target, cpu.ReadRegister(target)+1)
}

// ReadFlag returns the state of a status flag.
func (cpu *Cpu) ReadFlag(flag Flag) bool {
	return cpu.Status&flag.Mask() != 0
}

// WriteFlag sets or clears one status flag, leaving all other bits alone.
func (cpu *Cpu) WriteFlag(flag Flag, value bool) {
	if value {
		cpu.Status |= flag.Mask()
	} else {
		cpu.Status &^= flag.Mask()
	}
}
