// Package specfile reads and writes closet specs as YAML, TOML or JSON.
// Fields missing from a file keep their DefaultSpec values.
package specfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/gocloset/pkg/closet"
	"gopkg.in/yaml.v3"
)

// Format is a spec file encoding
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// ErrUnknownFormat is returned for unsupported file extensions
var ErrUnknownFormat = errors.New("unsupported spec file format")

// FormatOf picks the format from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%s: %w (expected .yaml, .toml or .json)", path, ErrUnknownFormat)
}

// Load reads a spec file
func Load(path string) (closet.Spec, error) {
	format, err := FormatOf(path)
	if err != nil {
		return closet.Spec{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return closet.Spec{}, fmt.Errorf("failed to read spec file: %w", err)
	}
	spec, err := Decode(data, format)
	if err != nil {
		return closet.Spec{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return spec, nil
}

// Decode parses data on top of DefaultSpec
func Decode(data []byte, format Format) (closet.Spec, error) {
	spec := closet.DefaultSpec()
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &spec)
	case TOML:
		err = toml.Unmarshal(data, &spec)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&spec)
	default:
		err = fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return closet.Spec{}, err
	}
	return spec, nil
}

// Encode writes spec in the given format
func Encode(w io.Writer, spec closet.Spec, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(spec); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(spec)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// Save writes spec to path, choosing the format from the extension
func Save(path string, spec closet.Spec) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, spec, format); err != nil {
		return fmt.Errorf("failed to encode spec: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write spec file: %w", err)
	}
	return nil
}
