package main

import (
	"fmt"
	"os"

	"github.com/orthocad/archwire/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "archwire",
	Short: "A CLI tool for orthodontic archwire path design over arch scans",
	Long: `archwire designs orthodontic wire paths over scanned tooth-arch surfaces.
It reads STL scans (ASCII and binary), extracts contact points along a
reference plane, fits smooth wire curves, and manages wire design files.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
