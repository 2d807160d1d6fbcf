package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List scheme kinds and their fields",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, kind := range scheme.List() {
			entry, _ := scheme.Lookup(kind)

			placeholder := "-"
			if entry.TypeName != "" {
				placeholder = "%" + entry.TypeName + "[...]"
			}
			fmt.Fprintf(out, "%-10s %-12s %s\n", kind, placeholder, entry.Description)

			var fields []string
			for _, f := range entry.Fields {
				if f.Settable() {
					fields = append(fields, f.Name+" ("+f.Kind.String()+")")
				}
			}
			fmt.Fprintf(out, "%-23s fields: %s\n", "", strings.Join(fields, ", "))
		}
	},
}
