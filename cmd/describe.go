package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rnjhnd/telecom-plan-visitor/app/mapper"
	"github.com/rnjhnd/telecom-plan-visitor/app/types"
	"github.com/spf13/cobra"
)

type describeOptions struct {
	telcoName     string
	promoPrice    float64
	dataAllowance int
	unliCallText  bool
	kind          string
	asJSON        bool
}

func newDescribeCmd() *cobra.Command {
	opts := &describeOptions{}

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the usage promo or unlimited call/text offer of a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, func() error {
				return runDescribe(cmd.OutOrStdout(), opts)
			})
		},
	}

	describeCmd.Flags().StringVar(&opts.telcoName, "telco", "", "Telco name, e.g. Smart, Globe, Dito")
	describeCmd.Flags().Float64Var(&opts.promoPrice, "price", 0, "Promo price")
	describeCmd.Flags().IntVar(&opts.dataAllowance, "allowance", 0, "Data allowance")
	describeCmd.Flags().BoolVar(&opts.unliCallText, "unli", false, "Plan includes unlimited calls and texts")
	describeCmd.Flags().StringVar(&opts.kind, "kind", "unli", "Offer kind: usage or unli")
	describeCmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the result as JSON")
	_ = describeCmd.MarkFlagRequired("telco")

	return describeCmd
}

func runDescribe(out io.Writer, opts *describeOptions) error {
	req := types.NewDescribeOfferRequest(opts.telcoName, opts.promoPrice, opts.dataAllowance, opts.unliCallText, opts.kind)
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := newOfferService().Describe(req)
	if err != nil {
		return err
	}

	if opts.asJSON {
		return writeJSON(out, mapper.OfferDescriptionToDTO(result.Plan, result.Kind, result.Description))
	}
	_, err = fmt.Fprintln(out, result.Description)
	return err
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
