package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
)

// New returns the ConfigStore selected by adapterCfg.Transport.
func New(adapterCfg config.ClientAdapter, log *logger.Logger) (ConfigStore, error) {
	switch adapterCfg.Transport {
	case "", config.TransportHTTP:
		return NewHTTPConfigStore(adapterCfg, log)
	case config.TransportGRPC:
		return NewGRPCConfigStore(adapterCfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, adapterCfg.Transport)
	}
}
