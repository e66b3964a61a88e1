package config

import (
	"time"

	"github.com/MKhiriev/go-admin-config/models"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{
				DSN:        "sqlite://admin-config.db",
				MaxRetries: 3,
				RetryDelay: 100 * time.Millisecond,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			Transport:      TransportHTTP,
			HTTPAddress:    "http://localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 10 * time.Second,
			RetryCount:     2,
		},
		Console: Console{
			StartScreen: models.RouteIDCard,
		},
	}
}
