package models

import (
	"encoding/json"
	"slices"
)

// unknownKeys returns the top-level members of the JSON object in data whose
// keys are not listed in known. It returns nil when there are none.
func unknownKeys(data []byte, known []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	var extra map[string]json.RawMessage
	for k, v := range all {
		if slices.Contains(known, k) {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = slices.Clone(v)
	}
	return extra, nil
}

// marshalWithExtra encodes v (which must encode to a JSON object) and adds the
// members of extra that v does not already define.
func marshalWithExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var all map[string]json.RawMessage
	if err = json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, raw := range extra {
		if _, ok := all[k]; ok {
			continue
		}
		all[k] = raw
	}
	return json.Marshal(all)
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(extra))
	for k, v := range extra {
		out[k] = slices.Clone(v)
	}
	return out
}
