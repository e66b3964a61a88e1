package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-admin-config/models"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <domain>",
		Short: "Print the summary counters of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := models.ParseDomain(args[0])
			if err != nil {
				return err
			}

			svcs, err := opts.services(cmd)
			if err != nil {
				return err
			}
			if err = svcs.Panel(domain).Load(cmd.Context()); err != nil {
				return err
			}

			return printValue(cmd.OutOrStdout(), opts.output, domainStats(svcs, domain))
		},
	}
}
