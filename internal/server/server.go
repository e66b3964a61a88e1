package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/handler"
	"github.com/MKhiriev/go-admin-config/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerNet, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run starts every created server and blocks until ctx is done and all of
// them have stopped.
func (s *server) run(ctx context.Context) {
	stopped := make(chan struct{}, 2)
	running := 0

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		running++
		go func() {
			s.httpServer.RunServer()
			stopped <- struct{}{}
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		running++
		go func() {
			s.gRPCServer.RunServer()
			stopped <- struct{}{}
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	for range running {
		<-stopped
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}
