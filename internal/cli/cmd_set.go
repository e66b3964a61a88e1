package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/models"
)

func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <domain> <path> <value>",
		Short: "Change one field and save the domain",
		Long: `Load the domain, set the field at path and save the whole domain.

The value is read as JSON when it parses (true, 30, "text"), otherwise it is
taken as a plain string.

Examples:
  configctl set idCard qrDiasExpiracion 90
  configctl set notifications smsNotifications.route_end true
  configctl set notifications legalText "Texto legal"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := models.ParseDomain(args[0])
			if err != nil {
				return err
			}

			svcs, err := opts.services(cmd)
			if err != nil {
				return err
			}

			field := domain.String() + "." + args[1]
			err = svcs.SetField(cmd.Context(), field, configmodel.ParsePatchValue(args[2]))
			if notice := svcs.Panel(domain).Notice(); notice.Message != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), notice.Message)
			}
			return err
		},
	}
}
