package main

import (
	"github.com/spf13/cobra"

	"github.com/campusbase/sheetloader/pkg/configuration"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Write sample spreadsheet templates for every dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			defer conf.Unload()
			return writeTemplates(conf.SheetsDir)
		},
	}
}
