package grpc

import (
	"context"

	"github.com/MKhiriev/go-admin-config/internal/utils"
	"github.com/MKhiriev/go-admin-config/models"
	"google.golang.org/grpc"
)

// ConfigServiceServer is the server API of adminconfig.ConfigService.
// Messages travel with the JSON codec registered in utils, so the service
// reuses the REST wire types.
type ConfigServiceServer interface {
	GetGlobalConfig(ctx context.Context, req *models.GlobalConfigRequest) (*models.APIResponse, error)
	UpdateDomain(ctx context.Context, req *models.DomainUpdateRequest) (*models.APIResponse, error)
	UpdateConfigField(ctx context.Context, req *models.FieldPatchRequest) (*models.APIResponse, error)
	ResetConfig(ctx context.Context, req *models.ResetRequest) (*models.APIResponse, error)
}

// RegisterConfigServiceServer registers srv on s.
func RegisterConfigServiceServer(s grpc.ServiceRegistrar, srv ConfigServiceServer) {
	s.RegisterService(&ConfigServiceDesc, srv)
}

// ConfigServiceDesc describes adminconfig.ConfigService.
var ConfigServiceDesc = grpc.ServiceDesc{
	ServiceName: utils.ConfigServiceName,
	HandlerType: (*ConfigServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetGlobalConfig", Handler: getGlobalConfigHandler},
		{MethodName: "UpdateDomain", Handler: updateDomainHandler},
		{MethodName: "UpdateConfigField", Handler: updateConfigFieldHandler},
		{MethodName: "ResetConfig", Handler: resetConfigHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adminconfig/config_service",
}

func getGlobalConfigHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.GlobalConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(ConfigServiceServer).GetGlobalConfig(ctx, req.(*models.GlobalConfigRequest))
	}
	if interceptor == nil {
		return call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: utils.MethodGetGlobalConfig}
	return interceptor(ctx, in, info, call)
}

func updateDomainHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.DomainUpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(ConfigServiceServer).UpdateDomain(ctx, req.(*models.DomainUpdateRequest))
	}
	if interceptor == nil {
		return call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: utils.MethodUpdateDomain}
	return interceptor(ctx, in, info, call)
}

func updateConfigFieldHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.FieldPatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(ConfigServiceServer).UpdateConfigField(ctx, req.(*models.FieldPatchRequest))
	}
	if interceptor == nil {
		return call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: utils.MethodUpdateConfigField}
	return interceptor(ctx, in, info, call)
}

func resetConfigHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.ResetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(ConfigServiceServer).ResetConfig(ctx, req.(*models.ResetRequest))
	}
	if interceptor == nil {
		return call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: utils.MethodResetConfig}
	return interceptor(ctx, in, info, call)
}
