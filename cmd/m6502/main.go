// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command m6502 assembles, disassembles and runs programs for the 6502
// subset interpreter.
package main

func main() {
	Execute()
}
