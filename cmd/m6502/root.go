package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/m6502/translate"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "m6502",
	Short: "An interpreter for a subset of the 6502 instruction set.",
	Long:  "Assemble, disassemble and run programs for a subset of the 6502 instruction set.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		if lang := GetString(cmd, "lang"); lang != "" {
			if err := translate.SetLanguage(lang); err != nil {
				log.Fatalf("--lang %v: %v", lang, err)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("m6502 ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}
		cmd.Help() //nolint:errcheck
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// GetFlag gets an expected boolean flag, or exits on error.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// GetString gets an expected string flag, or exits on error.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// GetUint8 gets an expected uint8 flag, or exits on error.
func GetUint8(cmd *cobra.Command, flag string) uint8 {
	r, err := cmd.Flags().GetUint8(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

func init() {
	rootCmd.Flags().Bool("version", false, "print version information")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("lang", "", "language for messages (BCP 47 tag)")
}
