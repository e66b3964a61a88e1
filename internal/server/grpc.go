package server

import (
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-admin-config/internal/config"
	myGRPC "github.com/MKhiriev/go-admin-config/internal/handler/grpc"
	"github.com/MKhiriev/go-admin-config/internal/logger"
)

type grpcServer struct {
	server          *grpc.Server
	listener        net.Listener
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.ServerNet, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(handler.UnaryInterceptors()...),
		grpc.ConnectionTimeout(cfg.RequestTimeout),
	)
	myGRPC.RegisterConfigServiceServer(server, handler)

	return &grpcServer{
		server:          server,
		listener:        listener,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() net.Addr {
	return g.listener.Addr()
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown waits for in-flight calls up to the shutdown timeout, then stops
// the server hard.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(g.shutdownTimeout):
		g.server.Stop()
	}
}
