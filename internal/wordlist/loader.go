package wordlist

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/NikitaCOEUR/texcomplete/internal/derrors"
	"github.com/NikitaCOEUR/texcomplete/internal/logger"
)

const (
	// CommentMarker starts a comment line in a word list
	CommentMarker = "#"
	// maxLineSize bounds a single word list line
	maxLineSize = 1024 * 1024
)

// SourceResult describes what one word list contributed to a catalog
type SourceResult struct {
	Name    string
	Entries int   // Entries appended from this source
	Skipped int   // Lines too short to carry a token
	Err     error // Open or read failure, nil on success
}

// Report summarizes a Load run, one result per source in load order
type Report struct {
	Sources  []SourceResult
	Duration time.Duration
}

// Failures returns the results of sources that failed to open or read
func (r *Report) Failures() []SourceResult {
	var failed []SourceResult
	for _, s := range r.Sources {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Total returns the number of entries added across all sources
func (r *Report) Total() int {
	n := 0
	for _, s := range r.Sources {
		n += s.Entries
	}
	return n
}

// Loader turns word lists into a Catalog
type Loader struct {
	resolver Resolver
	log      *logger.Logger
}

// NewLoader creates a loader that opens sources through resolver.
// A nil log discards output.
func NewLoader(resolver Resolver, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{resolver: resolver, log: log.With("component", "wordlist")}
}

// Load reads every source in order and returns the combined catalog.
// A source that cannot be opened or read is recorded in the report and skipped;
// entries parsed before a mid-stream failure are kept.
func (l *Loader) Load(sources []string) (*Catalog, *Report) {
	start := time.Now()
	report := &Report{Sources: make([]SourceResult, 0, len(sources))}
	var entries []Entry

	for _, name := range sources {
		result := SourceResult{Name: name}
		parsed, skipped, err := l.loadSource(name)
		entries = append(entries, parsed...)
		result.Entries = len(parsed)
		result.Skipped = skipped
		result.Err = err

		if err != nil {
			l.log.Warn().Str("source", name).Int("kept", len(parsed)).Err(err).Msg("word list unavailable")
		} else {
			l.log.Debug().Str("source", name).Int("entries", len(parsed)).Int("skipped", skipped).Msg("word list loaded")
		}
		report.Sources = append(report.Sources, result)
	}

	report.Duration = time.Since(start)
	l.log.Info().
		Int("entries", len(entries)).
		Int("failed", len(report.Failures())).
		Dur("took", report.Duration).
		Msg("completion catalog built")

	return NewCatalog(entries), report
}

func (l *Loader) loadSource(name string) ([]Entry, int, error) {
	if l.resolver == nil {
		return nil, 0, derrors.NewResourceError(name, "no resolver configured", nil)
	}

	rc, err := l.resolver.Open(name)
	if err != nil {
		return nil, 0, derrors.NewResourceError(name, "failed to open word list", err)
	}
	defer func() { _ = rc.Close() }()

	return Parse(rc, name)
}

// Parse reads one word list. Comment lines and blank lines are ignored, every other
// line loses its first character and the remainder becomes the token. A line with
// nothing left after the marker is counted as skipped.
// On a read error the entries parsed so far are returned together with a ReadError.
func Parse(r io.Reader, name string) ([]Entry, int, error) {
	var entries []Entry
	skipped := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}

		token, ok := stripMarker(line)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, Entry{Token: token, Description: name})
	}

	if err := scanner.Err(); err != nil {
		return entries, skipped, derrors.NewReadError(name, lineNo, err)
	}
	return entries, skipped, nil
}

// stripMarker drops the leading marker character, which may be multi-byte
func stripMarker(line string) (string, bool) {
	for i := range line {
		if i == 0 {
			continue
		}
		return line[i:], true
	}
	return "", false
}
