package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the configuration file. The
// same layout is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN        string   `json:"dsn" yaml:"dsn"`
			MaxRetries uint64   `json:"max_retries" yaml:"max_retries"`
			RetryDelay Duration `json:"retry_delay" yaml:"retry_delay"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		GRPCAddress     string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		Transport      string   `json:"transport" yaml:"transport"`
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RetryCount     int      `json:"retry_count" yaml:"retry_count"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Console struct {
		LogFile     string `json:"log_file" yaml:"log_file"`
		StartScreen string `json:"start_screen" yaml:"start_screen"`
	} `json:"console,omitempty" yaml:"console,omitempty"`
}

// parseFile reads a JSON or YAML configuration file, chosen by extension.
// Files without a YAML extension are decoded as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  f.App.Version,
			LogLevel: f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:        f.Storage.DB.DSN,
				MaxRetries: f.Storage.DB.MaxRetries,
				RetryDelay: time.Duration(f.Storage.DB.RetryDelay),
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			GRPCAddress:     f.Server.GRPCAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			Transport:      f.Adapter.Transport,
			HTTPAddress:    f.Adapter.HTTPAddress,
			GRPCAddress:    f.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			RetryCount:     f.Adapter.RetryCount,
		},
		Console: Console{
			LogFile:     f.Console.LogFile,
			StartScreen: f.Console.StartScreen,
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// as well as from integer nanoseconds, in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
