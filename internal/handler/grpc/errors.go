package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/internal/store"
)

var errorCodes = []struct {
	target  error
	code    codes.Code
	message string
}{
	{service.ErrNoDomainSupplied, codes.InvalidArgument, app.MsgNoDomainSupplied},
	{service.ErrInvalidDomain, codes.InvalidArgument, app.MsgInvalidDomain},
	{service.ErrInvalidPayload, codes.InvalidArgument, app.MsgInvalidPayload},
	{service.ErrInvalidField, codes.InvalidArgument, app.MsgInvalidField},
	{service.ErrInvalidPatch, codes.InvalidArgument, app.MsgInvalidPatch},
	{service.ErrInvalidResetScope, codes.InvalidArgument, app.MsgInvalidResetScope},
	{store.ErrConfigNotFound, codes.NotFound, app.MsgNotFound},
	{store.ErrStorageClosed, codes.Unavailable, app.MsgInternalServerError},
}

// statusFromError converts a service error into a gRPC status carrying the
// same user-facing message as the REST envelope.
func statusFromError(err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.target) {
			return status.Error(e.code, e.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
