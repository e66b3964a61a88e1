package configmodel

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-admin-config/models"
)

// Normalize merges payload over the defaults of domain, clamps the QR expiry
// and returns the canonical JSON together with the keys Merge dropped.
// A payload that is not a JSON object is rejected with ErrNotAnObject.
func Normalize(domain models.Domain, payload json.RawMessage) (json.RawMessage, []string, error) {
	if !IsObject(payload) {
		return nil, nil, ErrNotAnObject
	}

	switch domain {
	case models.DomainIDCard:
		m, dropped := MergeWithReport(DefaultIDCard(), payload)
		data, err := json.Marshal(ClampIDCard(m))
		return data, dropped, err
	case models.DomainNotifications:
		m, dropped := MergeWithReport(DefaultNotifications(), payload)
		data, err := json.Marshal(m)
		return data, dropped, err
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}

// PatchDomain applies one field patch to a stored domain payload. A nil stored
// payload starts from the defaults.
func PatchDomain(domain models.Domain, stored json.RawMessage, path string, value any) (json.RawMessage, error) {
	switch domain {
	case models.DomainIDCard:
		m, err := ApplyPatch(Merge(DefaultIDCard(), stored), path, value)
		if err != nil {
			return nil, err
		}
		return json.Marshal(ClampIDCard(m))
	case models.DomainNotifications:
		m, err := ApplyPatch(Merge(DefaultNotifications(), stored), path, value)
		if err != nil {
			return nil, err
		}
		return json.Marshal(m)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}
