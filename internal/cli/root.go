// Package cli implements configctl, the non-interactive admin console.
//
// Every command builds the client services from the client configuration,
// runs one panel operation and prints the result. Connection flags are
// forwarded to package config so the CLI, the TUI and the environment share
// the same settings.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

// ServicesLoader builds the client services from configuration arguments in
// the flag syntax understood by package config.
type ServicesLoader func(ctx context.Context, configArgs []string) (*service.ClientServices, error)

var errNoServicesLoader = errors.New("services loader is not provided")

// forwarded lists the persistent flags passed through to package config.
var forwarded = []string{"config", "env-file", "server-url", "server-grpc", "transport", "client-timeout", "log-level"}

type options struct {
	load   ServicesLoader
	output string
}

// NewRootCmd returns the configctl command tree.
func NewRootCmd(load ServicesLoader, buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &options{load: load}

	root := &cobra.Command{
		Use:   "configctl",
		Short: "Inspect and change the admin console configuration",
		Long: `configctl reads and writes the identity-card and notification settings
of the admin console through the configuration API.

Examples:
  configctl show idCard
  configctl stats notifications -o yaml
  configctl set idCard nombreCompleto.visible false
  configctl set notifications templateEmergency.subject "EMERGENCIA"
  configctl reset todo`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "JSON or YAML config file")
	pf.String("env-file", "", ".env file")
	pf.String("server-url", "", "configuration API base URL")
	pf.String("server-grpc", "", "configuration gRPC address")
	pf.String("transport", "", "transport: http or grpc")
	pf.Duration("client-timeout", 0, "request timeout")
	pf.String("log-level", "", "log level")
	pf.StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")

	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newSetCmd(opts))
	root.AddCommand(newResetCmd(opts))
	root.AddCommand(newVersionCmd(buildInfo))

	return root
}

// services builds the client services with the connection flags given on
// the command line.
func (o *options) services(cmd *cobra.Command) (*service.ClientServices, error) {
	if o.load == nil {
		return nil, errNoServicesLoader
	}
	return o.load(cmd.Context(), configArgs(cmd))
}

func configArgs(cmd *cobra.Command) []string {
	var args []string
	for _, name := range forwarded {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		args = append(args, "-"+name+"="+f.Value.String())
	}
	return args
}
