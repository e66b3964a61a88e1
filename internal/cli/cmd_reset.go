package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

func newResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "reset <todo|idCard|notifications>",
		Short:     "Restore defaults by dropping stored domains",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ResetAll), string(models.ResetIDCard), string(models.ResetNotifications)},
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := models.ResetScope(args[0])
			if len(scope.Domains()) == 0 {
				return fmt.Errorf("%w: %q", service.ErrInvalidResetScope, args[0])
			}

			svcs, err := opts.services(cmd)
			if err != nil {
				return err
			}
			if err = svcs.Reset(cmd.Context(), scope); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.MsgConfigReset)
			return nil
		},
	}
}
