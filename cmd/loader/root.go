package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "loader",
		Short:         "Loads school spreadsheet data into the relational schema",
		Long: "Reads one .xlsx file per dataset from the sheets directory and inserts the rows " +
			"in foreign-key-safe order inside a single transaction. Optional datasets with no " +
			"source file are synthesized from already-inserted reference data. If the sheets " +
			"directory is empty, template files are written instead and no loading happens.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd.Context())
		},
	}

	cmd.AddCommand(newTemplatesCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
