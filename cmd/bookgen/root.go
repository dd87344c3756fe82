package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookgen",
		Short:         "Generate reproducible book catalogs and cover art",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newCoverCmd(), newVersionCmd())
	return root
}
