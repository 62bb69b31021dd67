package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnake/internal/registry"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List all display drivers",
	Long:  `Shows a list of all display drivers compiled into termsnake.`,
	Args:  cobra.NoArgs,
	Run:   runDrivers,
}

func runDrivers(cmd *cobra.Command, args []string) {
	drivers := registry.List()
	out := cmd.OutOrStdout()

	if len(drivers) == 0 {
		fmt.Fprintln(out, "No drivers available.")
		return
	}

	fmt.Fprintln(out, "Available drivers:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range drivers {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, d := range drivers {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, d.Name, d.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'termsnake play --driver <name>' to use one.")
}
