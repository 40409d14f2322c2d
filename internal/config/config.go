// Package config handles loading and parsing of texcomplete settings.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/texcomplete/internal/derrors"
)

//go:embed defaults.yml
var defaultsYAML []byte

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// AutoComplete controls when the editor pops up suggestions
type AutoComplete struct {
	Enabled bool          `koanf:"enabled" json:"enabled,omitempty" jsonschema:"description=Show completions automatically while typing,default=true"`
	Delay   time.Duration `koanf:"delay" json:"delay,omitempty" jsonschema:"type=string,pattern=^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$|^0$,description=Delay before completions appear (Go duration e.g. 700ms)"`
}

// Registry points at an optional manifest of downloadable word lists
type Registry struct {
	Manifest string        `koanf:"manifest" json:"manifest,omitempty" jsonschema:"description=Path to a YAML manifest of remote word lists"`
	TTL      time.Duration `koanf:"ttl" json:"ttl,omitempty" jsonschema:"type=string,pattern=^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$|^0$,description=How long downloaded word lists are reused"`
}

// Settings is the complete texcomplete configuration
type Settings struct {
	LogLevel     string       `koanf:"log_level" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,description=Log level"`
	LatexPath    string       `koanf:"latex_path" json:"latex_path,omitempty" jsonschema:"description=Path to the LaTeX toolchain"`
	Welcome      string       `koanf:"welcome" json:"welcome,omitempty" jsonschema:"description=Welcome document template overriding the bundled one"`
	WordLists    []string     `koanf:"wordlists" json:"wordlists,omitempty" jsonschema:"description=Word lists loaded in order"`
	WordListDirs []string     `koanf:"wordlist_dirs" json:"wordlist_dirs,omitempty" jsonschema:"description=Directories searched for word lists before the bundled ones"`
	AutoComplete AutoComplete `koanf:"autocomplete" json:"autocomplete,omitempty"`
	Registry     Registry     `koanf:"registry" json:"registry,omitempty"`
}

// Clone returns a deep copy
func (s *Settings) Clone() *Settings {
	c := *s
	c.WordLists = append([]string(nil), s.WordLists...)
	c.WordListDirs = append([]string(nil), s.WordListDirs...)
	return &c
}

// Defaults returns the built-in settings
func Defaults() *Settings {
	s, err := Load("")
	if err != nil {
		// defaults.yml is embedded at build time
		panic(err)
	}
	return s
}

// parserFor picks a koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// Load reads the built-in defaults and, when path is not empty, overlays the file at path
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, derrors.NewConfigurationError(path, "cannot load config", err)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
	}

	s := &Settings{}
	if err := k.Unmarshal("", s); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	return s, nil
}

// GetConfigDir returns the texcomplete config directory
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "texcomplete"), nil
}

// FindConfigFile returns the first supported config file in dir, or "" if none exists
func FindConfigFile(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultsYAML returns the built-in settings file, used by `init`
func DefaultsYAML() []byte {
	return append([]byte(nil), defaultsYAML...)
}
