package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/internal"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm file",
	Short: "Disassemble a program image.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(2)
		}

		prog, err := cpu.Disassemble(data)
		fmt.Print(prog.String())
		if err != nil {
			log.Errorf("%v: %v", args[0], err)
			os.Exit(3)
		}
	},
}

var definesCmd = &cobra.Command{
	Use:   "defines",
	Short: "List the predefined assembler equates.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		emu := emulator.NewEmulator()
		for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
			fmt.Printf("%-16s %v\n", key, value)
		}
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(definesCmd)
}
