package config

import (
	"fmt"
	"time"
)

// ServerApp holds application settings of the configuration server.
type ServerApp struct {
	Version  string
	LogLevel string
}

// ServerStorage holds the repository settings of the configuration server.
type ServerStorage struct {
	DSN        string `validate:"required"`
	MaxRetries uint64
	RetryDelay time.Duration
}

// ServerNet holds the listen addresses and timeouts of the server.
type ServerNet struct {
	HTTPAddress     string `validate:"required"`
	GRPCAddress     string
	RequestTimeout  time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// ServerConfig is the configuration view consumed by cmd/server.
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  ServerNet
}

// GetServerConfig builds and validates the server view from args (usually
// os.Args[1:]) and the environment.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	if err = serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}

// ServerView maps the fields relevant to the server.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Storage: ServerStorage{
			DSN:        cfg.Storage.DB.DSN,
			MaxRetries: cfg.Storage.DB.MaxRetries,
			RetryDelay: cfg.Storage.DB.RetryDelay,
		},
		Server: ServerNet{
			HTTPAddress:     cfg.Server.HTTPAddress,
			GRPCAddress:     cfg.Server.GRPCAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
	}
}
