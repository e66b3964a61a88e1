package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Transport is "http" or "grpc".
	Transport string `validate:"oneof=http grpc"`
	// HTTPAddress is the configuration API base URL.
	HTTPAddress string `validate:"required_if=Transport http"`
	// GRPCAddress is the gRPC configuration service address.
	GRPCAddress string `validate:"required_if=Transport grpc"`
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration `validate:"gt=0"`
	// RetryCount is the number of retries on transport failures.
	RetryCount int `validate:"gte=0"`
}

// ClientConsole holds settings of the interactive console.
type ClientConsole struct {
	LogFile     string
	StartScreen string `validate:"oneof=/config/tarjetaID /config/notificaciones"`
}

// ClientConfig is the configuration view consumed by cmd/client and
// cmd/configctl.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Console ClientConsole
}

// GetClientConfig builds and validates the client view from args and the
// environment.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// ClientView maps the fields relevant to the clients.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			Transport:      cfg.Adapter.Transport,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Console: ClientConsole{
			LogFile:     cfg.Console.LogFile,
			StartScreen: cfg.Console.StartScreen,
		},
	}
}
