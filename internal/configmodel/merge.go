package configmodel

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Merge returns defaults overlaid with the top-level keys of remote.
//
// A key present in remote replaces the default value in full (an "email"
// object replaces the whole default FieldSpec, missing sub-keys become zero).
// Keys absent from remote keep their defaults, and keys unknown to M are kept
// in the model's Extra map. A nil, empty, null or non-object remote yields a
// copy of defaults. Neither input is modified.
func Merge[M any](defaults M, remote json.RawMessage) M {
	merged, _ := MergeWithReport(defaults, remote)
	return merged
}

// MergeWithReport is [Merge] that also returns the remote keys it had to drop
// because their value could not be decoded into the known field type (for
// example "email": 5). Dropped keys keep their defaults. A null value counts
// as absent and is not reported.
func MergeWithReport[M any](defaults M, remote json.RawMessage) (M, []string) {
	base, err := json.Marshal(defaults)
	if err != nil {
		return defaults, nil
	}

	var merged M
	if err = json.Unmarshal(base, &merged); err != nil {
		return defaults, nil
	}
	if !IsObject(remote) {
		return merged, nil
	}

	var dropped []string
	gjson.ParseBytes(remote).ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Null {
			return true
		}
		next, setErr := sjson.SetRawBytes(base, gjson.Escape(key.String()), []byte(value.Raw))
		if setErr != nil || !decodes[M](next) {
			dropped = append(dropped, key.String())
			return true
		}
		base = next
		return true
	})

	if err = json.Unmarshal(base, &merged); err != nil {
		return defaults, dropped
	}
	return merged, dropped
}

// IsObject reports whether raw holds a well-formed JSON object.
func IsObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return false
	}
	return gjson.ParseBytes(raw).IsObject()
}

// Clone returns a deep copy of m made through its JSON form.
func Clone[M any](m M) M {
	return Merge(m, nil)
}

func decodes[M any](data []byte) bool {
	var probe M
	return json.Unmarshal(data, &probe) == nil
}
