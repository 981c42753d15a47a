package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base for the chip8run command tree. The ROM path is
// optional: with none given, a native file-open dialog prompts for one.
var rootCmd = &cobra.Command{
	Use:   "chip8run [path/to/rom]",
	Short: "chip8run drives the chip8 package against an SDL window",
	Long:  "chip8run is a minimal graphical front end over the chip8 package's threaded simulator controller",
	Args:  cobra.MaximumNArgs(1),
	Run:   runEmulator,
}

var presetName string
var quirkShift bool

func init() {
	rootCmd.Flags().StringVar(&presetName, "preset", "cosmac-vip", "instruction set preset: cosmac-vip, superchip, or xo-chip")
	rootCmd.Flags().BoolVar(&quirkShift, "shift-quirk", false, "force in-place SUPERCHIP shift semantics regardless of preset")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
