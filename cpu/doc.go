// Package cpu implements the interpreter and assembler for a small subset of
// the MOS 6502 instruction set.
//
// The CPU consists of an accumulator (A), an index register (X), a status
// byte carrying the Zero and Negative flags, and a 16-bit program counter
// (Pc) that indexes into a caller supplied program. Execution fetches and
// decodes one instruction at a time through the opcode table, then applies
// its effect through the execute table, until a BRK is reached.
//
// Only immediate addressing is supported. There is no addressable memory,
// no stack and no interrupts.
//
// The assembler accepts the matching assembly language, supporting labels,
// equates, raw bytes, and compile-time expression evaluation.
package cpu
