package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

var saveFlags schemeFlags

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Manage saved schemes",
}

var schemeSaveCmd = &cobra.Command{
	Use:   "save <name> [kind]",
	Short: "Validate a scheme and save it under a name",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := saveFlags.build(cmd, args[1:])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Save(args[0], sch); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s scheme %q (%s)\n", sch.Kind(), args[0], sch.ID())
		return nil
	},
}

var schemeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved schemes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No saved schemes")
			return nil
		}
		fmt.Fprintf(out, "%-24s %-10s %s\n", "NAME", "KIND", "VERSION")
		fmt.Fprintln(out, "──────────────────────────────────────────────")
		for _, rec := range records {
			fmt.Fprintf(out, "%-24s %-10s %s\n", rec.Name, rec.Kind, rec.Version)
		}
		return nil
	},
}

var schemeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved scheme as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		sch, err := store.Load(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Kind   scheme.Kind   `json:"kind"`
			Scheme scheme.Scheme `json:"scheme"`
		}{sch.Kind(), sch})
	},
}

var schemeDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved scheme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
		return nil
	},
}

func init() {
	saveFlags.register(schemeSaveCmd, false)
	schemeCmd.AddCommand(schemeSaveCmd, schemeListCmd, schemeShowCmd, schemeDeleteCmd)
}
