// Package session keeps the state of one editor panel: its document buffer,
// dirty flag, file binding and the completion catalog built when it opens.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/NikitaCOEUR/texcomplete/internal/config"
	"github.com/NikitaCOEUR/texcomplete/internal/logger"
	"github.com/NikitaCOEUR/texcomplete/internal/resources"
	"github.com/NikitaCOEUR/texcomplete/internal/wordlist"
)

const (
	// DefaultDisplayName is shown until a file is bound to the session
	DefaultDisplayName = "welcome.tex"
	// MaxUndo bounds how many content changes Undo can step back through
	MaxUndo = 100
)

// Session is the headless model behind an editor panel
type Session struct {
	store    *config.Store
	resolver wordlist.Resolver
	log      *logger.Logger

	lifecycle sync.Mutex

	mu          sync.RWMutex
	content     string
	undo        []string
	redo        []string
	dirty       bool
	currentFile string
	displayName string
	remoteState string
	latexPath   string
	catalog     *wordlist.Catalog
	report      *wordlist.Report
	open        bool

	cancelWatch func()
	watchDone   chan struct{}
}

// New creates a closed session. resolver opens the word lists named in the settings.
func New(store *config.Store, resolver wordlist.Resolver, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Discard()
	}
	return &Session{
		store:       store,
		resolver:    resolver,
		log:         log.With("component", "session"),
		displayName: DefaultDisplayName,
	}
}

// Open builds the completion catalog, loads the welcome document and starts
// following settings changes. Word list or template failures only reduce
// what the session offers; they are logged and never abort Open.
func (s *Session) Open() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.IsOpen() {
		return
	}

	// Subscribe before reading settings so no change is missed in between
	changes, unsubscribe := s.store.Subscribe()
	stop := make(chan struct{})
	done := make(chan struct{})
	cancel := func() {
		unsubscribe()
		close(stop)
	}

	settings := s.store.Settings()
	catalog, report := wordlist.NewLoader(s.resolver, s.log).Load(settings.WordLists)

	welcome, err := s.renderWelcome(settings)
	if err != nil {
		s.log.Warn().Err(err).Msg("welcome document unavailable")
	}

	s.mu.Lock()
	s.catalog = catalog
	s.report = report
	s.latexPath = settings.LatexPath
	if err == nil {
		s.content = welcome
		s.dirty = true
		s.undo, s.redo = nil, nil
	}
	s.cancelWatch = cancel
	s.watchDone = done
	s.open = true
	s.mu.Unlock()

	go s.watch(changes, stop, done)
}

// Close drops the catalog and stops following settings
func (s *Session) Close() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancelWatch, s.watchDone
	s.catalog = nil
	s.report = nil
	s.open = false
	s.cancelWatch = nil
	s.watchDone = nil
	s.mu.Unlock()

	cancel()
	<-done
}

func (s *Session) watch(changes <-chan config.Change, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case c := <-changes:
			if c.Key == config.KeyLatexPath {
				s.mu.Lock()
				s.latexPath = c.New
				s.mu.Unlock()
				s.log.Debug().Str("latex_path", c.New).Msg("latex path updated")
			}
		case <-stop:
			return
		}
	}
}

func (s *Session) renderWelcome(settings *config.Settings) (string, error) {
	tmpl := resources.WelcomeTemplate()
	if settings.Welcome != "" {
		data, err := os.ReadFile(settings.Welcome)
		if err != nil {
			return "", fmt.Errorf("failed to read welcome template: %w", err)
		}
		tmpl = string(data)
	}
	return resources.RenderWelcome(tmpl, resources.WelcomeData{
		Title:     "Welcome",
		Delay:     settings.AutoComplete.Delay,
		WordLists: settings.WordLists,
	})
}

// IsOpen reports whether Open has run without a matching Close
func (s *Session) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// Content returns the document text
func (s *Session) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// SetContent replaces the document text and marks it dirty. The previous text
// becomes undoable and the redo history is dropped.
func (s *Session) SetContent(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text == s.content {
		s.dirty = true
		return
	}
	s.undo = pushBounded(s.undo, s.content)
	s.redo = nil
	s.content = text
	s.dirty = true
}

// Undo restores the text before the last change. It reports false when there
// is nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.undo) == 0 {
		return false
	}
	last := len(s.undo) - 1
	s.redo = pushBounded(s.redo, s.content)
	s.content, s.undo = s.undo[last], s.undo[:last]
	s.dirty = true
	return true
}

// Redo reapplies the last undone change. It reports false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.redo) == 0 {
		return false
	}
	last := len(s.redo) - 1
	s.undo = pushBounded(s.undo, s.content)
	s.content, s.redo = s.redo[last], s.redo[:last]
	s.dirty = true
	return true
}

// CanUndo reports whether Undo would change the content
func (s *Session) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.undo) > 0
}

// CanRedo reports whether Redo would change the content
func (s *Session) CanRedo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.redo) > 0
}

func pushBounded(history []string, text string) []string {
	history = append(history, text)
	if len(history) > MaxUndo {
		history = append(history[:0:0], history[len(history)-MaxUndo:]...)
	}
	return history
}

// Dirty reports unsaved changes
func (s *Session) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// SetDirty sets the dirty flag, typically cleared by the host after saving
func (s *Session) SetDirty(dirty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = dirty
}

// KeyTyped records an edit keystroke
func (s *Session) KeyTyped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
	if s.currentFile != "" {
		s.displayName = filepath.Base(s.currentFile) + "*"
	}
}

// CurrentFile returns the bound file path, "" when unbound
func (s *Session) CurrentFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentFile
}

// SetCurrentFile binds the session to path and resets the display name
func (s *Session) SetCurrentFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentFile = path
	s.displayName = filepath.Base(path)
}

// DisplayName returns the tab title
func (s *Session) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayName
}

// RemoteState returns the host's remote storage token
func (s *Session) RemoteState() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remoteState
}

// SetRemoteState stores an opaque token for the host
func (s *Session) SetRemoteState(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remoteState = token
}

// LatexPath returns the LaTeX toolchain path. An open session follows store
// notifications; a closed one reads the store directly.
func (s *Session) LatexPath() string {
	s.mu.RLock()
	open, path := s.open, s.latexPath
	s.mu.RUnlock()
	if !open {
		return s.store.Settings().LatexPath
	}
	return path
}

// AutoCompleteDelay returns how long the editor waits before suggesting
func (s *Session) AutoCompleteDelay() time.Duration {
	return s.store.Settings().AutoComplete.Delay
}

// Catalog returns the catalog built by Open, nil when closed
func (s *Session) Catalog() *wordlist.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Report returns the load report from Open, nil when closed
func (s *Session) Report() *wordlist.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Complete returns catalog entries starting with prefix.
// Nothing is offered when autocompletion is disabled or the session is closed.
func (s *Session) Complete(prefix string) []wordlist.Entry {
	if !s.store.Settings().AutoComplete.Enabled {
		return nil
	}
	return s.Catalog().Filter(prefix)
}
