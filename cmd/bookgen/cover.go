package main

import (
	"fmt"
	"os"

	"bookfaker/internal/cover"

	"github.com/spf13/cobra"
)

func newCoverCmd() *cobra.Command {
	var (
		spec   = cover.DefaultSpec()
		output string
	)
	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Render a cover as SVG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := spec.Validate(); err != nil {
				return fmt.Errorf("invalid size: %w", err)
			}
			svg := cover.Render(spec.Title, spec.Author, spec.Width, spec.Height)
			if output == "" || output == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&spec.Title, "title", "t", cover.DefaultTitle, "book title")
	f.StringVarP(&spec.Author, "author", "a", cover.DefaultAuthor, "book author")
	f.IntVar(&spec.Width, "width", cover.DefaultWidth, "width in pixels")
	f.IntVar(&spec.Height, "height", cover.DefaultHeight, "height in pixels")
	f.StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	return cmd
}
