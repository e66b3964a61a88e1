package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var errUnknownOutput = fmt.Errorf("output must be %s or %s", outputJSON, outputYAML)

// printValue writes v as indented JSON or as YAML. YAML goes through the JSON
// encoding so wire key names are kept.
func printValue(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	switch format {
	case outputJSON:
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		var doc any
		if err = json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("%w: %q", errUnknownOutput, format)
}
