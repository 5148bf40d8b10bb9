package main

import (
	"fmt"
	"os"

	"github.com/orthocad/archwire/internal/editor"
	"github.com/orthocad/archwire/pkg/analysis"
	"github.com/spf13/cobra"
)

var designCmd = &cobra.Command{
	Use:   "design [file]",
	Short: "Display statistics of a wire design file",
	Long:  "Show wire path statistics including total length, segment sizes, and U-loop points.",
	Args:  cobra.ExactArgs(1),
	Run:   runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)
}

func runDesign(cmd *cobra.Command, args []string) {
	filename := args[0]

	ed, err := editor.New(editor.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := ed.LoadDesign(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzePath(ed.Path())

	fmt.Println("Wire Design Information")
	fmt.Println("=======================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Path Statistics:")
	fmt.Printf("  Points: %d\n", result.PointCount)
	fmt.Printf("  U-loop arm points: %d\n", result.LoopArmCount)
	fmt.Printf("  U-loop interior points: %d\n", result.LoopPointCount)
	fmt.Printf("  Wire length: %.6f mm\n\n", result.WireLength)

	if result.SegmentCount > 0 {
		fmt.Println("Segments:")
		fmt.Printf("  Count: %d\n", result.SegmentCount)
		fmt.Printf("  Minimum: %.6f mm\n", result.MinSegment)
		fmt.Printf("  Maximum: %.6f mm\n", result.MaxSegment)
		fmt.Printf("  Average: %.6f mm\n\n", result.AvgSegment)
	}

	fmt.Println("Extent:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))

	controls := ed.Plane().ControlPoints()
	if len(controls) == 3 {
		fmt.Println("\nReference Plane:")
		for i, c := range controls {
			fmt.Printf("  Control %d: %s\n", i+1, analysis.FormatVector(c))
		}
	}
}
