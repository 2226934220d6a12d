package cpu

// Flag is a condition flag in the status byte.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_ZERO     = Flag(1) // z
	FLAG_NEGATIVE = Flag(7) // n
)

// Status byte masks. Only Zero and Negative are implemented; every other bit
// is reserved and never written.
const (
	STATUS_ZERO     = uint8(0b0000_0010) // Set when the last written register is zero.
	STATUS_NEGATIVE = uint8(0b1000_0000) // Set when bit 7 of the last written register is set.
)

// statusLetters names the status bits, MSB first.
const statusLetters = "NV-BDIZC"

// Mask returns the status byte mask of the flag.
func (fl Flag) Mask() uint8 {
	return 1 << uint(fl)
}

// StatusString renders a status byte as letters, upper case for a set bit
// and '.' for a clear one.
func StatusString(status uint8) string {
	out := []byte(statusLetters)
	for n := range 8 {
		if status&(0x80>>n) == 0 {
			out[n] = '.'
		}
	}
	return string(out)
}
