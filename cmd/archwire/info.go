package main

import (
	"fmt"
	"os"

	"github.com/orthocad/archwire/pkg/analysis"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an arch scan",
	Long:  "Show scan statistics including dimensions, triangle count, and surface area.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeScan(model)

	fmt.Println("Arch Scan Information")
	fmt.Println("=====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Scan Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Surface Area: %.6f mm²\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f mm\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f mm\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f mm\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f mm\n", result.BoundingBox.Diagonal())
}
