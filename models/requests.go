package models

import "encoding/json"

// FieldPatchRequest is the body of PATCH /api/admin/configuracion/field.
// Field is "<domain>.<path>", e.g. "idCardConfig.email.visible".
type FieldPatchRequest struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// ResetRequest is the body of POST /api/admin/configuracion/reset.
type ResetRequest struct {
	Scope ResetScope `json:"tipo" validate:"required,oneof=todo idCard notifications"`
}

// DomainUpdateRequest replaces one domain in full. It is the gRPC form of
// PUT /api/admin/configuracion.
type DomainUpdateRequest struct {
	Domain  Domain          `json:"domain"`
	Payload json.RawMessage `json:"payload"`
}

// GlobalConfigRequest is the empty request of the gRPC GetGlobalConfig call.
type GlobalConfigRequest struct{}
