package status

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/texcomplete/internal/cache"
	"github.com/NikitaCOEUR/texcomplete/internal/config"
	"github.com/NikitaCOEUR/texcomplete/internal/wordlist"
)

func sampleReport() *wordlist.Report {
	return &wordlist.Report{
		Sources: []wordlist.SourceResult{
			{Name: "tex.cwl", Entries: 40},
			{Name: "latex-document.cwl", Entries: 3, Err: errors.New("disk error")},
			{Name: "latex-mathsymbols.cwl", Entries: 30, Skipped: 2},
		},
		Duration: 1500 * time.Microsecond,
	}
}

func TestCollect(t *testing.T) {
	settings := config.Defaults()
	settings.LatexPath = "/usr/bin"

	data := Collect("/home/ada/.config/texcomplete/config.yml", settings, sampleReport(), nil)

	assert.Equal(t, "/usr/bin", data.LatexPath)
	assert.Equal(t, 73, data.TotalEntries)
	require.Len(t, data.Sources, 3)
	assert.Equal(t, "disk error", data.Sources[1].Error)
	assert.Empty(t, data.Sources[0].Error)
	assert.Empty(t, data.CacheDir)
}

func TestCollect_WithCache(t *testing.T) {
	store, err := cache.New(t.TempDir())
	require.NoError(t, err)
	_, err = store.Store("tikz.cwl", "https://example.com/tikz.cwl", []byte("\\draw\n"))
	require.NoError(t, err)

	settings := config.Defaults()
	settings.WordLists = []string{"tex.cwl", "tikz.cwl"}
	settings.Registry.Manifest = "/etc/lists.yml"

	data := Collect("", settings, nil, store)

	assert.Equal(t, store.Dir(), data.CacheDir)
	require.Len(t, data.CachedLists, 1)
	assert.Equal(t, "tikz.cwl", data.CachedLists[0].Name)
	assert.Equal(t, int64(6), data.CachedLists[0].Size)
}

func TestRender(t *testing.T) {
	settings := config.Defaults()
	out := Render(Collect("", settings, sampleReport(), nil))

	assert.Contains(t, out, "built-in defaults")
	assert.Contains(t, out, "not set")
	assert.Contains(t, out, "tex.cwl")
	assert.Contains(t, out, "40 entries")
	assert.Contains(t, out, "disk error")
	assert.Contains(t, out, "2 skipped")
	assert.Contains(t, out, "73")
	assert.Contains(t, out, "700ms")
	assert.NotContains(t, out, "Remote word lists")
}

func TestRender_DisabledAndRemote(t *testing.T) {
	settings := config.Defaults()
	settings.AutoComplete.Enabled = false
	settings.Registry.Manifest = "/etc/lists.yml"
	settings.WordListDirs = []string{"/srv/cwl"}

	out := Render(Collect("/tmp/config.yml", settings, &wordlist.Report{}, nil))

	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "/srv/cwl")
	assert.Contains(t, out, "Remote word lists")
	assert.Contains(t, out, "/etc/lists.yml")
	assert.Contains(t, out, "No word lists configured")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0 B"},
		{in: 1023, want: "1023 B"},
		{in: 1024, want: "1.0 KB"},
		{in: 1536, want: "1.5 KB"},
		{in: 5 * 1024 * 1024, want: "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}
