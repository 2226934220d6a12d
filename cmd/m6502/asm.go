package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/m6502/emulator"
)

var asmCmd = &cobra.Command{
	Use:     "asm [flags] file.s",
	Short:   "Assemble a program.",
	Long:    `Assemble a source file into a raw program image.`,
	Aliases: []string{"assemble"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emu := emulator.NewEmulator()

		prog, err := assembleFile(emu, args[0], GetFlag(cmd, "verbose"))
		if err != nil {
			log.Errorf("%v: %v", args[0], err)
			os.Exit(2)
		}

		if GetFlag(cmd, "list") {
			fmt.Print(prog.String())
		}

		output := GetString(cmd, "output")
		if output == "" {
			return
		}

		err = os.WriteFile(output, prog.Binary(), 0o644)
		if err != nil {
			log.Errorf("%v: %v", output, err)
			os.Exit(2)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(asmCmd)
	asmCmd.Flags().StringP("output", "o", "", "write the program image to this file")
	asmCmd.Flags().BoolP("list", "l", false, "print the program listing")
}
