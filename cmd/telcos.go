package cmd

import (
	"fmt"
	"io"

	"github.com/rnjhnd/telecom-plan-visitor/app/mapper"
	"github.com/spf13/cobra"
)

func newTelcosCmd() *cobra.Command {
	var asJSON bool

	telcosCmd := &cobra.Command{
		Use:   "telcos",
		Short: "List telcos known to the offer catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, func() error {
				return runTelcos(cmd.OutOrStdout(), asJSON)
			})
		},
	}
	telcosCmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return telcosCmd
}

func runTelcos(out io.Writer, asJSON bool) error {
	names := newOfferService().ListTelcos()
	if asJSON {
		return writeJSON(out, mapper.TelcosToDTO(names))
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}
