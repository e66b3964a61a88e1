package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags from args (without the program
// name). A dedicated FlagSet is used so hosts with their own flag handling
// (cobra) can pass through only the arguments meant for configuration.
//
// Flags:
//
//	-a                server HTTP address in format [host]:[port]
//	-grpc-address     server gRPC address in format [host]:[port]
//	-d                repository DSN (postgres://, sqlite://, badger://)
//	-c/-config        JSON or YAML file path with configs
//	-env-file         .env file path
//	-log-level        zerolog level name
//	-request-timeout  server request timeout (e.g. "30s", "1m")
//	-shutdown-timeout server graceful shutdown timeout
//	-server-url       configuration API base URL used by clients
//	-server-grpc      configuration gRPC address used by clients
//	-transport        client transport, http or grpc
//	-client-timeout   client request timeout
//	-log-file         console log file
//	-screen           console start screen route
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN     string
		configPath      string
		envFile         string
		logLevel        string
		requestTimeout  time.Duration
		shutdownTimeout time.Duration
		serverURL       string
		serverGRPC      string
		transport       string
		clientTimeout   time.Duration
		logFile         string
		screen          string
	)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Repository DSN")
	fs.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", ".env file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&serverURL, "server-url", "", "Configuration API base URL")
	fs.StringVar(&serverGRPC, "server-grpc", "", "Configuration gRPC address")
	fs.StringVar(&transport, "transport", "", "Client transport: http or grpc")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout")
	fs.StringVar(&logFile, "log-file", "", "Console log file")
	fs.StringVar(&screen, "screen", "", "Console start screen")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			GRPCAddress:     grpcServerAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			Transport:      transport,
			HTTPAddress:    serverURL,
			GRPCAddress:    serverGRPC,
			RequestTimeout: clientTimeout,
		},
		Console: Console{
			LogFile:     logFile,
			StartScreen: screen,
		},
		FilePath: configPath,
		EnvFile:  envFile,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is rendered as an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
