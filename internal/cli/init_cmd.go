package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/texcomplete/internal/config"
	"github.com/NikitaCOEUR/texcomplete/internal/derrors"
)

// Init writes the built-in settings to a config file so they can be edited.
// An empty path targets config.yml in the config dir.
func Init(path string, force bool, out io.Writer) error {
	out = CommonParams{Out: out}.out()

	if path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return derrors.NewConfigurationError("", "failed to get config directory", err)
		}
		path = filepath.Join(dir, config.SupportedConfigNames[0])
	}

	if _, err := os.Stat(path); err == nil && !force {
		return derrors.NewConfigurationError(path, fmt.Sprintf("config file already exists: %s", path), nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return derrors.NewConfigurationError(path, "failed to create config directory", err)
	}

	content := append([]byte("# texcomplete settings\n"), config.DefaultsYAML()...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return derrors.NewConfigurationError(path, "failed to write config file", err)
	}

	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
