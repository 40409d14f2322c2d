package session

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/texcomplete/internal/config"
	"github.com/NikitaCOEUR/texcomplete/internal/resources"
	"github.com/NikitaCOEUR/texcomplete/internal/wordlist"
)

func bundledSession(t *testing.T, store *config.Store) *Session {
	t.Helper()
	if store == nil {
		store = config.NewStore(nil)
	}
	s := New(store, &wordlist.FSResolver{FS: resources.FS()}, nil)
	t.Cleanup(s.Close)
	return s
}

func TestNew_Defaults(t *testing.T) {
	s := bundledSession(t, nil)

	assert.False(t, s.IsOpen())
	assert.False(t, s.Dirty())
	assert.Equal(t, DefaultDisplayName, s.DisplayName())
	assert.Empty(t, s.CurrentFile())
	assert.Nil(t, s.Catalog())
	assert.Equal(t, 700*time.Millisecond, s.AutoCompleteDelay())
}

func TestOpen_BuildsCatalogAndWelcome(t *testing.T) {
	s := bundledSession(t, nil)
	s.Open()

	assert.True(t, s.IsOpen())
	require.NotNil(t, s.Catalog())
	assert.Greater(t, s.Catalog().Len(), 0)
	assert.Empty(t, s.Report().Failures())

	assert.Contains(t, s.Content(), `\documentclass{article}`)
	assert.True(t, s.Dirty(), "welcome text counts as unsaved")
}

func TestOpen_IsIdempotent(t *testing.T) {
	s := bundledSession(t, nil)
	s.Open()
	first := s.Catalog()
	s.Open()

	assert.Same(t, first, s.Catalog())
}

func TestOpen_MissingWordListIsFailSoft(t *testing.T) {
	settings := config.Defaults()
	settings.WordLists = []string{"tex.cwl", "missing.cwl"}
	s := bundledSession(t, config.NewStore(settings))

	s.Open()

	assert.True(t, s.IsOpen())
	assert.Greater(t, s.Catalog().Len(), 0)
	require.Len(t, s.Report().Failures(), 1)
	assert.Equal(t, "missing.cwl", s.Report().Failures()[0].Name)
}

func TestOpen_CustomWelcomeTemplate(t *testing.T) {
	tmpl := filepath.Join(t.TempDir(), "welcome.tmpl")
	require.NoError(t, os.WriteFile(tmpl, []byte(`% {{ .Title | lower }} {{ len .WordLists }}`), 0644))

	settings := config.Defaults()
	settings.Welcome = tmpl
	s := bundledSession(t, config.NewStore(settings))
	s.Open()

	assert.Equal(t, "% welcome 3", s.Content())
}

func TestOpen_MissingWelcomeTemplateKeepsEditorUsable(t *testing.T) {
	settings := config.Defaults()
	settings.Welcome = "/nonexistent/welcome.tmpl"
	s := bundledSession(t, config.NewStore(settings))
	s.Open()

	assert.True(t, s.IsOpen())
	assert.Empty(t, s.Content())
	assert.False(t, s.Dirty())
	assert.Greater(t, s.Catalog().Len(), 0)
}

func TestClose_DiscardsCatalog(t *testing.T) {
	s := bundledSession(t, nil)
	s.Open()
	s.Close()
	s.Close()

	assert.False(t, s.IsOpen())
	assert.Nil(t, s.Catalog())
	assert.Nil(t, s.Report())
	assert.Empty(t, s.Complete("sec"))
}

func TestContentAndDirty(t *testing.T) {
	s := bundledSession(t, nil)

	s.SetContent("\\section{Intro}")
	assert.Equal(t, "\\section{Intro}", s.Content())
	assert.True(t, s.Dirty())

	s.SetDirty(false)
	assert.False(t, s.Dirty())
}

func TestKeyTyped(t *testing.T) {
	s := bundledSession(t, nil)

	s.KeyTyped()
	assert.True(t, s.Dirty())
	assert.Equal(t, DefaultDisplayName, s.DisplayName(), "unbound sessions keep their name")

	s.SetCurrentFile("/home/ada/thesis/main.tex")
	assert.Equal(t, "main.tex", s.DisplayName())
	assert.Equal(t, "/home/ada/thesis/main.tex", s.CurrentFile())

	s.KeyTyped()
	assert.Equal(t, "main.tex*", s.DisplayName())
}

func TestRemoteState(t *testing.T) {
	s := bundledSession(t, nil)

	s.SetRemoteState("rev:42")
	assert.Equal(t, "rev:42", s.RemoteState())
}

func TestLatexPath_FollowsSettings(t *testing.T) {
	settings := config.Defaults()
	settings.LatexPath = "/usr/bin"
	store := config.NewStore(settings)
	s := bundledSession(t, store)

	assert.Equal(t, "/usr/bin", s.LatexPath())

	s.Open()
	require.NoError(t, store.Set(config.KeyLatexPath, "/opt/texlive/bin"))

	assert.Eventually(t, func() bool {
		return s.LatexPath() == "/opt/texlive/bin"
	}, time.Second, 5*time.Millisecond)

	// Other keys leave the path alone
	require.NoError(t, store.Set(config.KeyLogLevel, "debug"))
	assert.Equal(t, "/opt/texlive/bin", s.LatexPath())
}

func TestLatexPath_CurrentWhileClosed(t *testing.T) {
	store := config.NewStore(nil)
	s := bundledSession(t, store)

	require.NoError(t, store.Set(config.KeyLatexPath, "/before/open"))
	assert.Equal(t, "/before/open", s.LatexPath())

	s.Open()
	assert.Equal(t, "/before/open", s.LatexPath())
	s.Close()

	require.NoError(t, store.Set(config.KeyLatexPath, "/after/close"))
	assert.Equal(t, "/after/close", s.LatexPath())
}

func TestUndoRedo(t *testing.T) {
	s := bundledSession(t, nil)

	assert.False(t, s.CanUndo())
	assert.False(t, s.Undo())
	assert.False(t, s.Redo())

	s.SetContent("a")
	s.SetContent("ab")
	s.SetContent("abc")
	s.SetDirty(false)

	require.True(t, s.Undo())
	assert.Equal(t, "ab", s.Content())
	assert.True(t, s.Dirty())
	require.True(t, s.Undo())
	assert.Equal(t, "a", s.Content())
	assert.True(t, s.CanRedo())

	require.True(t, s.Redo())
	assert.Equal(t, "ab", s.Content())

	// A new edit drops what was left to redo
	s.SetContent("abX")
	assert.False(t, s.CanRedo())
	assert.False(t, s.Redo())

	require.True(t, s.Undo())
	assert.Equal(t, "ab", s.Content())
}

func TestUndo_IsBounded(t *testing.T) {
	s := bundledSession(t, nil)

	for i := 0; i <= MaxUndo+10; i++ {
		s.SetContent(strconv.Itoa(i))
	}

	undone := 0
	for s.Undo() {
		undone++
	}
	assert.Equal(t, MaxUndo, undone)
	assert.Equal(t, strconv.Itoa(10), s.Content())
}

func TestOpen_WelcomeStartsFreshHistory(t *testing.T) {
	s := bundledSession(t, nil)
	s.SetContent("scratch")
	s.Open()

	assert.False(t, s.CanUndo())
	assert.Contains(t, s.Content(), `\documentclass{article}`)
}

func TestComplete(t *testing.T) {
	store := config.NewStore(&config.Settings{
		WordLists:    []string{"a.cwl"},
		AutoComplete: config.AutoComplete{Enabled: true, Delay: time.Second},
	})
	resolver := &wordlist.FSResolver{FS: fstest.MapFS{
		"a.cwl": {Data: []byte("\\section\n\\subsection\n\\sum\n")},
	}}
	s := New(store, resolver, nil)
	t.Cleanup(s.Close)
	s.Open()

	var tokens []string
	for _, e := range s.Complete("su") {
		tokens = append(tokens, e.Token)
	}
	assert.Equal(t, []string{"subsection", "sum"}, tokens)
	assert.Len(t, s.Complete(""), 3)

	require.NoError(t, store.Set(config.KeyAutoCompleteEnabled, "false"))
	assert.Empty(t, s.Complete("su"))
}

func TestWelcomeMentionsActiveWordLists(t *testing.T) {
	s := bundledSession(t, nil)
	s.Open()

	assert.True(t, strings.Contains(s.Content(), strings.Join(resources.DefaultWordLists(), ", ")))
}
