package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ServerNet
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "both", cfg: config.ServerNet{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.ServerNet{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", cfg: config.ServerNet{GRPCAddress: ":9090"}, wantGRPC: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.ServerNet{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
