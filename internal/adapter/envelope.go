package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-admin-config/models"
	"github.com/tidwall/gjson"
)

// decodeEnvelope validates an APIResponse body and extracts its data.
//
// A missing or non-object data field is not an error: the caller gets an
// empty GlobalConfig and falls back to defaults.
func decodeEnvelope(body []byte) (models.GlobalConfig, error) {
	if !gjson.ValidBytes(body) {
		return models.GlobalConfig{}, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return models.GlobalConfig{}, fmt.Errorf("%w: body is not an object", ErrMalformedResponse)
	}

	success := root.Get("success")
	if success.Type != gjson.True && success.Type != gjson.False {
		return models.GlobalConfig{}, fmt.Errorf("%w: missing success flag", ErrMalformedResponse)
	}
	if !success.Bool() {
		return models.GlobalConfig{}, &ServerError{Message: root.Get("message").String()}
	}

	var cfg models.GlobalConfig
	data := root.Get("data")
	if !data.IsObject() {
		return cfg, nil
	}

	for _, domain := range models.Domains {
		payload := data.Get(gjson.Escape(domain.String()))
		if payload.Exists() && payload.Type != gjson.Null {
			cfg.Set(domain, json.RawMessage(payload.Raw))
		}
	}
	return cfg, nil
}

// decodeAPIResponse is decodeEnvelope for an already decoded gRPC reply.
func decodeAPIResponse(resp *models.APIResponse) (models.GlobalConfig, error) {
	if resp == nil {
		return models.GlobalConfig{}, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return models.GlobalConfig{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return decodeEnvelope(body)
}
