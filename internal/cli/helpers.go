// Package cli implements the texcomplete commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/texcomplete/internal/cache"
	"github.com/NikitaCOEUR/texcomplete/internal/config"
	"github.com/NikitaCOEUR/texcomplete/internal/logger"
	"github.com/NikitaCOEUR/texcomplete/internal/resources"
	"github.com/NikitaCOEUR/texcomplete/internal/wordlist"
)

// CommonParams are shared by every command that loads word lists
type CommonParams struct {
	ConfigPath string    // Explicit config file; "" searches the config dir
	LogLevel   string    // Overrides the configured level when set
	CacheDir   string    // Download cache; "" uses the XDG cache dir
	Out        io.Writer // Command output; nil means stdout
}

func (p CommonParams) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// components holds initialized texcomplete components
type components struct {
	configPath string
	settings   *config.Settings
	store      *config.Store
	log        *logger.Logger
	resolver   wordlist.Resolver
	cache      *cache.Cache // nil without a remote manifest
}

// initializeComponents loads settings and builds the resolver chain:
// user directories first, then the bundled lists, then the remote manifest
func initializeComponents(params CommonParams) (*components, error) {
	configPath := params.ConfigPath
	if configPath == "" {
		if dir, err := config.GetConfigDir(); err == nil {
			configPath = config.FindConfigFile(dir)
		}
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := settings.LogLevel
	if params.LogLevel != "" {
		level = params.LogLevel
	}
	log := logger.New(level, os.Stderr)

	var chain wordlist.ChainResolver
	for _, dir := range settings.WordListDirs {
		chain = append(chain, wordlist.NewDirResolver(dir))
	}
	chain = append(chain, &wordlist.FSResolver{FS: resources.FS()})

	c := &components{
		configPath: configPath,
		settings:   settings,
		store:      config.NewStore(settings),
		log:        log,
	}

	if settings.Registry.Manifest != "" {
		manifest, err := wordlist.LoadManifest(settings.Registry.Manifest)
		if err != nil {
			return nil, err
		}

		cacheDir := params.CacheDir
		if cacheDir == "" {
			cacheDir, err = defaultCacheDir()
			if err != nil {
				return nil, err
			}
		}
		store, err := cache.New(cacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}

		c.cache = store
		chain = append(chain, wordlist.NewRemoteResolver(manifest, store,
			wordlist.WithTTL(settings.Registry.TTL),
			wordlist.WithLogger(log)))
	}

	c.resolver = chain
	return c, nil
}

func defaultCacheDir() (string, error) {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "texcomplete", "wordlists"), nil
}
