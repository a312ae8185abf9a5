package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Defaults holds per-directory defaults for flags a user would otherwise
// repeat on every invocation. Explicit flags always override these values.
type Defaults struct {
	// Parallel is the default worker count when --parallel is absent.
	Parallel int `yaml:"parallel,omitempty"`

	// BufferSize is the default read chunk size in bytes.
	BufferSize int `yaml:"buffer_size,omitempty"`

	// ChecksumFile is the manifest used by a bare -c flag, replacing the
	// built-in default name. It never switches a run into verify mode on
	// its own.
	ChecksumFile string `yaml:"checksum_file,omitempty"`

	// Progress enables progress reporting by default.
	Progress bool `yaml:"progress,omitempty"`
}

// ConfigFileName is the optional defaults file looked up in the working
// directory.
const ConfigFileName = "hasher.yaml"

// Load reads ConfigFileName from dir.
func Load(dir string) (*Defaults, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
