package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
)

var validateFlags schemeFlags

var validateCmd = &cobra.Command{
	Use:   "validate [kind]",
	Short: "Check a scheme without generating values",
	Long: `Build a scheme exactly as 'generate' would and report whether it is valid.
Disabled decorators are checked too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := validateFlags.build(cmd, args)
		if err != nil {
			return err
		}
		if err := scheme.Validate(sch); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s scheme %s is valid\n", sch.Kind(), sch.ID())
		return nil
	},
}

func init() {
	validateFlags.register(validateCmd, true)
}
