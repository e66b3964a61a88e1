package configmodel

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/MKhiriev/go-admin-config/models"
)

const maxPathDepth = 2

// ApplyPatch returns a copy of model with the leaf at path replaced by value.
//
// Paths are dot separated and at most two segments deep: "legalText",
// "nombreCompleto.visible", "pushNotifications.route_start". The input model
// is never modified and repeating the same patch is a no-op. No range
// checks are made here; see [ClampExpiryDays].
//
// ErrInvalidKeyPath is returned for an empty or too deep path and for a path
// that descends into a scalar. ErrPatchTypeMismatch is returned when value
// cannot be stored in the target field.
func ApplyPatch[M any](model M, path string, value any) (M, error) {
	segments, err := splitPath(path)
	if err != nil {
		return model, err
	}

	data, err := json.Marshal(model)
	if err != nil {
		return model, fmt.Errorf("encode model: %w", err)
	}

	if len(segments) > 1 {
		parent := gjson.GetBytes(data, gjson.Escape(segments[0]))
		if parent.Exists() && !parent.IsObject() {
			return model, fmt.Errorf("%w: %q is not an object", ErrInvalidKeyPath, segments[0])
		}
	}

	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = gjson.Escape(s)
	}
	patched, err := sjson.SetBytes(data, strings.Join(escaped, "."), value)
	if err != nil {
		return model, fmt.Errorf("%w: %q: %w", ErrInvalidKeyPath, path, err)
	}

	var out M
	if err = json.Unmarshal(patched, &out); err != nil {
		return model, fmt.Errorf("%w: %q: %w", ErrPatchTypeMismatch, path, err)
	}
	return out, nil
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidKeyPath)
	}
	segments := strings.Split(path, ".")
	if len(segments) > maxPathDepth {
		return nil, fmt.Errorf("%w: %q is deeper than %d levels", ErrInvalidKeyPath, path, maxPathDepth)
	}
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidKeyPath, path)
		}
	}
	return segments, nil
}

// SplitDomainPath splits "idCardConfig.email.visible" into the domain and the
// in-domain path "email.visible".
func SplitDomainPath(field string) (models.Domain, string, error) {
	head, rest, ok := strings.Cut(field, ".")
	if !ok || rest == "" {
		return "", "", fmt.Errorf("%w: %q has no domain prefix", ErrInvalidKeyPath, field)
	}
	switch models.Domain(head) {
	case models.DomainIDCard, models.DomainNotifications:
		return models.Domain(head), rest, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnknownDomain, head)
}

// ParsePatchValue turns text typed by a user into a patch value: "true" and
// "false" become booleans, integers become int, a double-quoted literal is
// unquoted and anything else stays a string.
func ParsePatchValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if s, err := strconv.Unquote(raw); err == nil && strings.HasPrefix(raw, `"`) {
		return s
	}
	return raw
}

// ClampExpiryDays forces days into the slider range.
func ClampExpiryDays(days int) int {
	return min(max(days, models.QRExpiryMinDays), models.QRExpiryMaxDays)
}

// ClampIDCard returns c with its QR expiry clamped.
func ClampIDCard(c models.IDCardConfig) models.IDCardConfig {
	c = c.Clone()
	c.ExpiryDays = ClampExpiryDays(c.ExpiryDays)
	return c
}

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Placeholders lists the distinct {{name}} tokens of a template body in order
// of first appearance. Bodies are never substituted; this is for display.
func Placeholders(body string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range placeholderRe.FindAllStringSubmatch(body, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}
