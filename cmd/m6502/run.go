package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/m6502/emulator"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] file",
	Short: "Run a program.",
	Long: `Assemble (or load, with --binary) a program and run it until BRK,
then print the final register state.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose := GetFlag(cmd, "verbose")

		emu := emulator.NewEmulator()
		emu.Verbose = verbose

		prog, err := loadProgram(emu, args[0], GetFlag(cmd, "binary"), verbose)
		if err != nil {
			log.Errorf("%v: %v", args[0], err)
			os.Exit(2)
		}
		emu.Program = prog

		err = emu.Reset()
		if err != nil {
			log.Errorf("%v: %v", args[0], err)
			os.Exit(2)
		}

		emu.Cpu.A = GetUint8(cmd, "a")
		emu.Cpu.X = GetUint8(cmd, "x")

		err = emu.Run()
		fmt.Print(emu.Cpu.String())
		if err != nil {
			log.Errorf("%v: %v", args[0], err)
			os.Exit(3)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("binary", "b", false, "file is a raw program image")
	runCmd.Flags().Uint8("a", 0, "initial accumulator")
	runCmd.Flags().Uint8("x", 0, "initial index register")
}
