package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tunehunt/internal/registry"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List available content sources",
	Long: `Shows the content sources that can supply the real name lists.
Select one with content.source in the config or TUNEHUNT_SOURCE.`,
	Args: cobra.NoArgs,
	Run:  runSources,
}

func runSources(_ *cobra.Command, _ []string) {
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Println("No sources available.")
		return
	}

	fmt.Println("Available sources:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range sources {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}
}
