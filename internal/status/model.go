// Package status collects and renders the state of the completion setup.
package status

import (
	"time"

	"github.com/NikitaCOEUR/texcomplete/internal/cache"
	"github.com/NikitaCOEUR/texcomplete/internal/config"
	"github.com/NikitaCOEUR/texcomplete/internal/wordlist"
	"github.com/NikitaCOEUR/texcomplete/pkg/version"
)

// Data contains all the information to display in status
type Data struct {
	Version    string
	GitCommit  string
	ConfigPath string // "" when running on built-in defaults

	LogLevel          string
	LatexPath         string
	AutoComplete      bool
	AutoCompleteDelay time.Duration
	WordListDirs      []string

	Sources      []SourceInfo
	TotalEntries int
	LoadDuration time.Duration

	ManifestPath string
	CacheDir     string
	CachedLists  []CachedListInfo
}

// SourceInfo is one word list line in the status output
type SourceInfo struct {
	Name    string
	Entries int
	Skipped int
	Error   string
}

// CachedListInfo describes a downloaded word list
type CachedListInfo struct {
	Name    string
	Size    int64
	Fetched time.Time
}

// Collect turns the pieces assembled by the CLI into display data.
// store may be nil when no remote manifest is configured.
func Collect(configPath string, settings *config.Settings, report *wordlist.Report, store *cache.Cache) *Data {
	data := &Data{
		Version:           version.Version,
		GitCommit:         version.GitCommit,
		ConfigPath:        configPath,
		LogLevel:          settings.LogLevel,
		LatexPath:         settings.LatexPath,
		AutoComplete:      settings.AutoComplete.Enabled,
		AutoCompleteDelay: settings.AutoComplete.Delay,
		WordListDirs:      settings.WordListDirs,
		ManifestPath:      settings.Registry.Manifest,
	}

	if report != nil {
		data.TotalEntries = report.Total()
		data.LoadDuration = report.Duration
		for _, s := range report.Sources {
			info := SourceInfo{Name: s.Name, Entries: s.Entries, Skipped: s.Skipped}
			if s.Err != nil {
				info.Error = s.Err.Error()
			}
			data.Sources = append(data.Sources, info)
		}
	}

	if store != nil {
		data.CacheDir = store.Dir()
		for _, name := range settings.WordLists {
			if entry, ok := store.Get(name); ok {
				data.CachedLists = append(data.CachedLists, CachedListInfo{
					Name:    name,
					Size:    entry.Size,
					Fetched: entry.Timestamp,
				})
			}
		}
	}

	return data
}
