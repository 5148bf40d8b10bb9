package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/orthocad/archwire/internal/editor"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/orthocad/archwire/pkg/viewer"
	"github.com/orthocad/archwire/pkg/wirepath"
	"github.com/spf13/cobra"
)

var (
	previewDesign string
	previewOut    string
	previewSize   int
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render an arch scan with its wire design to a PNG image",
	Args:  cobra.ExactArgs(1),
	Run:   runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewDesign, "design", "", "wire design file to overlay")
	previewCmd.Flags().StringVar(&previewOut, "out", "preview.png", "output PNG file")
	previewCmd.Flags().IntVar(&previewSize, "size", 800, "image width and height in pixels")
}

func runPreview(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	var path wirepath.Sequence
	if previewDesign != "" {
		ed, err := editor.New(editor.DefaultConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := ed.LoadDesign(previewDesign); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		path = ed.Path()
	}

	img := viewer.Snapshot(model, path, previewSize, previewSize)

	out, err := os.Create(previewOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", previewOut, previewSize, previewSize)
}
