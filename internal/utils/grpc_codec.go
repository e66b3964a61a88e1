package utils

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// JSONCodecName is the content subtype under which [JSONCodec] is registered.
// Clients select it with grpc.CallContentSubtype(JSONCodecName).
const JSONCodecName = "json"

// Fully qualified gRPC names of the configuration service.
const (
	ConfigServiceName       = "adminconfig.ConfigService"
	MethodGetGlobalConfig   = "/" + ConfigServiceName + "/GetGlobalConfig"
	MethodUpdateDomain      = "/" + ConfigServiceName + "/UpdateDomain"
	MethodUpdateConfigField = "/" + ConfigServiceName + "/UpdateConfigField"
	MethodResetConfig       = "/" + ConfigServiceName + "/ResetConfig"
)

// JSONCodec carries gRPC messages as JSON so the service shares its wire
// types with the HTTP transport.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string {
	return JSONCodecName
}

func init() {
	encoding.RegisterCodec(JSONCodec{})
}
