package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/utils"
)

// TraceIDMetadataKey is the metadata key carrying the request trace id.
const TraceIDMetadataKey = "x-trace-id"

// UnaryInterceptors returns the interceptor chain of the server: tracing
// first, then access logging.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withTraceID, h.withLogging}
}

// withTraceID reuses the caller's trace id or generates one, echoes it in the
// response header and attaches a logger carrying it to ctx.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(utils.WithTraceID(ctx, traceID))

	// only fails outside a real RPC
	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

	return next(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
