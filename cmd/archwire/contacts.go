package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/orthocad/archwire/internal/contact"
	"github.com/orthocad/archwire/pkg/analysis"
	"github.com/orthocad/archwire/pkg/geometry"
	"github.com/orthocad/archwire/pkg/stl"
	"github.com/spf13/cobra"
)

var planeSpec string

var contactsCmd = &cobra.Command{
	Use:   "contacts [file]",
	Short: "Extract the contact ring of a reference plane with an arch scan",
	Long: `Extract and print the ordered contact points where a reference plane
touches the scanned arch surface. The plane is given by three points as nine
comma-separated coordinates: x1,y1,z1,x2,y2,z2,x3,y3,z3.`,
	Args: cobra.ExactArgs(1),
	Run:  runContacts,
}

func init() {
	rootCmd.AddCommand(contactsCmd)

	contactsCmd.Flags().StringVar(&planeSpec, "plane", "",
		"reference plane as three points: x1,y1,z1,x2,y2,z2,x3,y3,z3")
	contactsCmd.MarkFlagRequired("plane")
}

func runContacts(cmd *cobra.Command, args []string) {
	filename := args[0]

	points, err := parsePlaneSpec(planeSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --plane: %v\n", err)
		os.Exit(1)
	}
	plane, err := geometry.PlaneFromPoints(points[0], points[1], points[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	extractor := contact.NewExtractor()
	contacts := extractor.Extract(model.Vertices(), plane)

	fmt.Println("Contact Point Extraction")
	fmt.Println("========================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Plane normal: %s\n", analysis.FormatVector(plane.Normal))
	fmt.Printf("Tolerance: %.2f mm, cluster radius: %.2f mm\n\n",
		extractor.Tolerance, extractor.ClusterRadius)

	if len(contacts) == 0 {
		fmt.Println("The plane does not touch the surface.")
		return
	}

	fmt.Printf("Contact points (%d, in travel order):\n", len(contacts))
	for i, c := range contacts {
		fmt.Printf("  %3d: %s\n", i, analysis.FormatVector(c))
	}
}

// parsePlaneSpec parses nine comma-separated coordinates into three points
func parsePlaneSpec(spec string) ([3]geometry.Vector3, error) {
	var points [3]geometry.Vector3

	parts := strings.Split(spec, ",")
	if len(parts) != 9 {
		return points, fmt.Errorf("expected 9 coordinates, got %d", len(parts))
	}

	var coords [9]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return points, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		coords[i] = value
	}

	for i := 0; i < 3; i++ {
		points[i] = geometry.NewVector3(coords[i*3], coords[i*3+1], coords[i*3+2])
	}
	return points, nil
}
