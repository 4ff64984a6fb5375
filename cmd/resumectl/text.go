package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-builder/internal/extract"
)

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text FILE",
		Short: "Print the visible text of a rendered PDF or DOCX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read document")
			}
			text, err := extract.ExtractTextFromBytes(cmd.Context(), data, "", args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to extract text from %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
