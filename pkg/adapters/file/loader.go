package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/pkg/machine"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a machine file.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// StdinPath makes Loader read the description from its standard input reader.
const StdinPath = "-"

// ErrUnknownFormat is returned when a format name is not supported.
var ErrUnknownFormat = errors.New("unknown machine format")

// ParseFormat resolves a user supplied format name.
// The empty string resolves to the empty Format, meaning "detect from path".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath guesses the format from the file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses a machine description, keeping state and trigger order.
func Decode(data []byte, format Format) (*machine.Description, error) {
	d := machine.New()
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("failed to parse JSON machine: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("failed to parse YAML machine: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	return d, nil
}

// Loader implements ports.MachineLoader for a file on disk or standard input.
type Loader struct {
	path   string
	format Format
	stdin  io.Reader
}

// Option configures a Loader.
type Option func(*Loader)

// WithFormat forces the format instead of detecting it from the extension.
func WithFormat(format Format) Option {
	return func(l *Loader) {
		l.format = format
	}
}

// WithStdin sets the reader used when the path is StdinPath.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// New creates a Loader for path.
func New(path string, opts ...Option) *Loader {
	l := &Loader{
		path:  path,
		stdin: os.Stdin,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the configured path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and decodes the machine file.
func (l *Loader) Load() (*machine.Description, error) {
	if l.path == "" {
		return nil, fmt.Errorf("machine path is required")
	}

	var (
		data []byte
		err  error
	)
	if l.path == StdinPath {
		data, err = io.ReadAll(l.stdin)
	} else {
		data, err = os.ReadFile(l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read machine %s: %w", l.path, err)
	}

	format := l.format
	if format == "" {
		format = FormatFromPath(l.path)
	}

	d, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return d, nil
}
