package models

import "encoding/json"

// GlobalConfig is the envelope returned by GET /api/admin/configuracion.
// Either domain may be absent, meaning "use defaults". Payloads stay raw so
// the merger can decide key by key what survives.
type GlobalConfig struct {
	IDCardConfig        json.RawMessage `json:"idCardConfig,omitempty"`
	NotificationsConfig json.RawMessage `json:"notificationsConfig,omitempty"`
}

// Domain returns the raw payload of d, or nil if absent.
func (g GlobalConfig) Domain(d Domain) json.RawMessage {
	switch d {
	case DomainIDCard:
		return g.IDCardConfig
	case DomainNotifications:
		return g.NotificationsConfig
	}
	return nil
}

// Set stores payload under d. Unknown domains are ignored.
func (g *GlobalConfig) Set(d Domain, payload json.RawMessage) {
	switch d {
	case DomainIDCard:
		g.IDCardConfig = payload
	case DomainNotifications:
		g.NotificationsConfig = payload
	}
}

// APIResponse is the envelope every configuration endpoint answers with.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
