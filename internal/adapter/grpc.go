package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/utils"
	"github.com/MKhiriev/go-admin-config/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type grpcConfigStore struct {
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  *logger.Logger
}

// NewGRPCConfigStore constructs the gRPC implementation of [ConfigStore]
// against adapterCfg.GRPCAddress. Extra dial options are appended after the
// defaults, which is how tests inject a bufconn dialer.
func NewGRPCConfigStore(adapterCfg config.ClientAdapter, log *logger.Logger, opts ...grpc.DialOption) (ConfigStore, error) {
	if adapterCfg.GRPCAddress == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(utils.JSONCodecName)),
	}, opts...)

	conn, err := grpc.NewClient(adapterCfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial grpc config service: %w", err)
	}

	return &grpcConfigStore{conn: conn, timeout: adapterCfg.RequestTimeout, logger: log}, nil
}

// Close releases the underlying connection.
func (g *grpcConfigStore) Close() error {
	return g.conn.Close()
}

func (g *grpcConfigStore) GetGlobalConfig(ctx context.Context) (models.GlobalConfig, error) {
	return g.invoke(ctx, "get global config", utils.MethodGetGlobalConfig, &models.GlobalConfigRequest{})
}

func (g *grpcConfigStore) UpdateDomain(ctx context.Context, domain models.Domain, payload json.RawMessage) (models.GlobalConfig, error) {
	req := &models.DomainUpdateRequest{Domain: domain, Payload: payload}
	return g.invoke(ctx, "update "+domain.String(), utils.MethodUpdateDomain, req)
}

func (g *grpcConfigStore) UpdateConfigField(ctx context.Context, field string, value any) (models.GlobalConfig, error) {
	req := &models.FieldPatchRequest{Field: field, Value: value}
	return g.invoke(ctx, "update field "+field, utils.MethodUpdateConfigField, req)
}

func (g *grpcConfigStore) ResetConfig(ctx context.Context, scope models.ResetScope) (models.GlobalConfig, error) {
	req := &models.ResetRequest{Scope: scope}
	return g.invoke(ctx, "reset "+string(scope), utils.MethodResetConfig, req)
}

func (g *grpcConfigStore) invoke(ctx context.Context, op, method string, req any) (models.GlobalConfig, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, "x-trace-id", traceID)
	}

	var resp models.APIResponse
	if err := g.conn.Invoke(ctx, method, req, &resp); err != nil {
		mapped := mapGRPCError(op, err)
		g.logger.Err(mapped).Str("func", "grpcConfigStore.invoke").Str("method", method).Msg("grpc call failed")
		return models.GlobalConfig{}, mapped
	}

	cfg, err := decodeAPIResponse(&resp)
	if err != nil {
		return models.GlobalConfig{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

// mapGRPCError splits status errors into transport failures and server
// rejections. Rejections carry the HTTP status the REST API would have used.
func mapGRPCError(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return &TransportError{Op: op, Err: err}
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return &TransportError{Op: op, Err: err}
	}

	httpStatus := httpStatusFromCode(st.Code())
	return &ServerError{
		Status:  httpStatus,
		Message: st.Message(),
		Err:     errors.Join(statusSentinel(httpStatus), err),
	}
}

func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
