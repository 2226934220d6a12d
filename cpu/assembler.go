// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":        "0",
	"PROGRAM_LIMIT": fmt.Sprintf("0x%x", PROGRAM_LIMIT),
}

// equateDepth limits how many equates may refer to one another.
const equateDepth = 16

// Assembler is a single pass assembler for the 6502 subset.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to pc.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// asmValue is a number or a symbol, optionally inverted or reduced to
// one of its bytes.
type asmValue struct {
	Invert bool    `parser:"@\"~\"?"`
	Select string  `parser:"@(\"<\" | \">\")?"`
	Number *string `parser:"( @Number"`
	Ident  *string `parser:"| @Ident )"`
}

// asmDirective is a '.name arg, arg...' line.
type asmDirective struct {
	Name string      `parser:"@Directive"`
	Args []*asmValue `parser:"( @@ ( \",\"? @@ )* )?"`
}

// asmStatement is a 'mnemonic [#value]' line.
type asmStatement struct {
	Mnemonic  string    `parser:"@Ident"`
	Immediate bool      `parser:"@\"#\"?"`
	Operand   *asmValue `parser:"@@?"`
}

// asmLine is a single line of source, after comment removal and expansion.
type asmLine struct {
	Labels    []string      `parser:"( @Ident \":\" )*"`
	Directive *asmDirective `parser:"( @@"`
	Statement *asmStatement `parser:"| @@ )?"`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Number", Pattern: `\$[0-9a-fA-F]+|0[xX][0-9a-fA-F]+|%[01]+|-?[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[#:,~<>]`},
})

var asmParser = participle.MustBuild[asmLine](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// parseNumber parses $hex, %binary, 0x hex, 0 octal, and decimal numbers.
func parseNumber(word string) (value int64, err error) {
	switch {
	case strings.HasPrefix(word, "$"):
		value, err = strconv.ParseInt(word[1:], 16, 64)
	case strings.HasPrefix(word, "%"):
		value, err = strconv.ParseInt(word[1:], 2, 64)
	default:
		value, err = strconv.ParseInt(word, 0, 64)
	}
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// valueOf returns the value of a number, equate or label.
// An unknown symbol returns ErrLabelMissing.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	for range equateDepth {
		equate, ok := asm.Equate[word]
		if !ok {
			break
		}
		word = equate
	}

	if len(word) > 0 && (word[0] == '$' || word[0] == '%' || word[0] == '-' || (word[0] >= '0' && word[0] <= '9')) {
		return parseNumber(word)
	}

	pc, ok := asm.Label[word]
	if ok {
		value = int64(pc)
		return
	}

	err = ErrLabelMissing(word)
	return
}

// byteOf reduces a value to a single byte.
func (asm *Assembler) byteOf(val *asmValue, value int64) (data byte, err error) {
	switch val.Select {
	case "<":
		value &= 0xff
	case ">":
		value = (value >> 8) & 0xff
	}

	if value < -128 || value > 0xff {
		err = ErrOperandRange
		return
	}

	data = byte(value)
	if val.Invert {
		data = ^data
	}

	return
}

// evalValue evaluates a parsed value into a single byte.
func (asm *Assembler) evalValue(val *asmValue) (data byte, err error) {
	var value int64
	if val.Number != nil {
		value, err = parseNumber(*val.Number)
	} else {
		value, err = asm.valueOf(*val.Ident)
	}
	if err != nil {
		return
	}

	return asm.byteOf(val, value)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		var v64 int64
		v64, err = asm.valueOf(key)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, pc := range asm.Label {
		pred[key] = starlark.MakeInt(pc)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expandLine replaces character literals and $() expressions, and drops comments.
func (asm *Assembler) expandLine(line string) (out string, err error) {
	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		}
		return fmt.Sprintf("%d", str[0])
	})

	line, _, _ = strings.Cut(line, ";")

	// Do $() evaluations
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})

	out = strings.TrimSpace(out)

	return
}

// currentPc gets the pc of the next generated byte.
func (asm *Assembler) currentPc() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Pc + len(last.Bytes)
}

// parseLine parses and assembles a single line.
func (asm *Assembler) parseLine(text string, lineno int) (err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line, err := asm.expandLine(text)
	if err != nil {
		return
	}

	if len(line) == 0 {
		return
	}

	parsed, err := asmParser.ParseString("", line)
	if err != nil {
		return
	}

	for _, label := range parsed.Labels {
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		_, ok = asm.Equate[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentPc()
	}

	words, _, _ := strings.Cut(text, ";")
	opcode := Opcode{
		LineNo: lineno,
		Pc:     asm.currentPc(),
		Words:  strings.Fields(words),
	}

	switch {
	case parsed.Directive != nil:
		err = asm.parseDirective(parsed.Directive, &opcode)
	case parsed.Statement != nil:
		err = asm.parseStatement(parsed.Statement, &opcode)
	}
	if err != nil {
		return
	}

	if len(opcode.Bytes) != 0 {
		asm.Opcode = append(asm.Opcode, opcode)
	}

	return
}

// parseDirective evaluates a directive.
func (asm *Assembler) parseDirective(dir *asmDirective, opcode *Opcode) (err error) {
	switch strings.ToLower(dir.Name) {
	case ".equ":
		// .equ NAME VALUE
		if len(dir.Args) != 2 || dir.Args[0].Ident == nil || dir.Args[0].Invert || dir.Args[0].Select != "" {
			err = ErrEquateSyntax
			return
		}
		name := *dir.Args[0].Ident
		_, ok := asm.Equate[name]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		_, ok = asm.Label[name]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		val := dir.Args[1]
		var value int64
		if val.Number != nil {
			value, err = parseNumber(*val.Number)
		} else {
			value, err = asm.valueOf(*val.Ident)
		}
		if _, missing := err.(ErrLabelMissing); missing && !val.Invert && val.Select == "" {
			// Resolved as a label when used.
			err = nil
			asm.Equate[name] = *val.Ident
			return
		}
		if err != nil {
			return
		}
		switch val.Select {
		case "<":
			value &= 0xff
		case ">":
			value = (value >> 8) & 0xff
		}
		if val.Invert {
			value = ^value
		}
		asm.Equate[name] = fmt.Sprintf("%d", value)
	case ".byte":
		if len(dir.Args) == 0 {
			err = ErrDirectiveSyntax
			return
		}
		for _, val := range dir.Args {
			var data byte
			data, err = asm.evalValue(val)
			if label, missing := err.(ErrLabelMissing); missing {
				err = nil
				data = opcode.link(val, label)
			}
			if err == ErrOperandRange {
				err = ErrDirectiveValue
			}
			if err != nil {
				return
			}
			opcode.Bytes = append(opcode.Bytes, data)
		}
	default:
		err = ErrDirectiveSyntax
	}

	return
}

// link defers the next byte of the opcode until label is defined, and
// returns its placeholder. The linked value is xor-ed into the placeholder.
func (op *Opcode) link(val *asmValue, label ErrLabelMissing) (data byte) {
	op.Link = append(op.Link, Link{
		Index:  len(op.Bytes),
		Label:  string(label),
		Select: val.Select,
	})
	if val.Invert {
		data = 0xff
	}

	return
}

// parseStatement assembles an instruction.
func (asm *Assembler) parseStatement(stmt *asmStatement, opcode *Opcode) (err error) {
	if !knownMnemonic(stmt.Mnemonic) {
		err = ErrOpcodeInvalid
		return
	}

	mode := MODE_IMPLIED
	switch {
	case stmt.Immediate && stmt.Operand != nil:
		mode = MODE_IMMEDIATE
	case stmt.Operand != nil:
		err = ErrAddressingMode
		return
	case stmt.Immediate:
		err = ErrOperandMissing
		return
	}

	code, ok := lookupOpcode(stmt.Mnemonic, mode)
	if !ok {
		err = ErrAddressingMode
		return
	}

	opcode.Bytes = append(opcode.Bytes, code)

	if mode == MODE_IMMEDIATE {
		var data byte
		data, err = asm.evalValue(stmt.Operand)
		if label, missing := err.(ErrLabelMissing); missing {
			err = nil
			data = opcode.link(stmt.Operand, label)
		}
		if err != nil {
			return
		}
		opcode.Bytes = append(opcode.Bytes, data)
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Debugf("%v: %v", lineno, line)
		}

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		if asm.currentPc() > PROGRAM_LIMIT {
			err = ErrProgramSize
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		for _, link := range op.Link {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")

			pc, ok := asm.Label[link.Label]
			if !ok {
				err = ErrLabelMissing(link.Label)
				return
			}
			value := int64(pc)
			switch link.Select {
			case "<":
				value &= 0xff
			case ">":
				value = (value >> 8) & 0xff
			}
			if value > 0xff {
				err = ErrOperandRange
				return
			}
			op.Bytes[link.Index] ^= byte(value)
		}
	}

	prog = &Program{
		Opcodes: append([]Opcode(nil), asm.Opcode...),
	}

	return
}
