package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <domain>",
		Short: "Print the effective configuration of a domain",
		Long: `Print the configuration of a domain as the console sees it: the stored
values merged over the defaults.

Domains: idCard (idCardConfig), notifications (notificationsConfig).`,
		Args: cobra.ExactArgs(1),
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

			return printValue(cmd.OutOrStdout(), opts.output, domainConfig(svcs, domain))
		},
	}
}

func domainConfig(svcs *service.ClientServices, domain models.Domain) any {
	if domain == models.DomainNotifications {
		return svcs.Notifications.Config()
	}
	return svcs.IDCard.Config()
}

func domainStats(svcs *service.ClientServices, domain models.Domain) any {
	if domain == models.DomainNotifications {
		return svcs.Notifications.Stats()
	}
	return svcs.IDCard.Stats()
}
