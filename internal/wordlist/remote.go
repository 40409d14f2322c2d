package wordlist

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NikitaCOEUR/texcomplete/internal/cache"
	"github.com/NikitaCOEUR/texcomplete/internal/derrors"
	"github.com/NikitaCOEUR/texcomplete/internal/logger"
)

const (
	// DefaultManifestVersion is the manifest format this build understands
	DefaultManifestVersion = "v1"
	// DefaultRemoteTTL is how long a downloaded word list is used before refetching
	DefaultRemoteTTL = 7 * 24 * time.Hour
	// MaxWordListSize caps a single downloaded word list (5MB)
	MaxWordListSize = 5 * 1024 * 1024
)

// Manifest lists word lists that can be fetched over HTTP
type Manifest struct {
	Version     string                  `yaml:"version"`
	Description string                  `yaml:"description"`
	Lists       map[string]ManifestList `yaml:"lists"`
}

// ManifestList is one downloadable word list
type ManifestList struct {
	URL         string `yaml:"url"`
	SHA256      string `yaml:"sha256,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// LoadManifest reads a YAML manifest from disk
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.NewResourceError(path, "failed to read manifest", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and checks a YAML manifest
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Version != "" && m.Version != DefaultManifestVersion {
		return nil, derrors.NewValidationError("version", fmt.Sprintf("unsupported manifest version %q", m.Version), nil)
	}
	for name, list := range m.Lists {
		if err := validateURL(list.URL); err != nil {
			return nil, derrors.NewValidationError("lists/"+name, "invalid url", err)
		}
	}
	return &m, nil
}

// RemoteResolver opens word lists named in a manifest, downloading them on demand
// and keeping the bodies in a cache.
type RemoteResolver struct {
	manifest *Manifest
	store    *cache.Cache
	client   *http.Client
	ttl      time.Duration
	maxSize  int64
	now      func() time.Time
	log      *logger.Logger
}

// RemoteOption configures a RemoteResolver
type RemoteOption func(*RemoteResolver)

// WithHTTPClient overrides the client used for downloads
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *RemoteResolver) { r.client = client }
}

// WithTTL sets how long cached bodies stay fresh
func WithTTL(ttl time.Duration) RemoteOption {
	return func(r *RemoteResolver) { r.ttl = ttl }
}

// WithMaxSize caps the size of a single download
func WithMaxSize(n int64) RemoteOption {
	return func(r *RemoteResolver) { r.maxSize = n }
}

// WithLogger sets the logger
func WithLogger(log *logger.Logger) RemoteOption {
	return func(r *RemoteResolver) { r.log = log }
}

// NewRemoteResolver creates a resolver backed by manifest and store
func NewRemoteResolver(manifest *Manifest, store *cache.Cache, opts ...RemoteOption) *RemoteResolver {
	r := &RemoteResolver{
		manifest: manifest,
		store:    store,
		client:   http.DefaultClient,
		ttl:      DefaultRemoteTTL,
		maxSize:  MaxWordListSize,
		now:      time.Now,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open returns the body of name, from cache when fresh, otherwise downloaded.
// If the download fails, a stale cached copy is served instead. Either way the
// cached copy must still match the manifest's URL and checksum.
func (r *RemoteResolver) Open(name string) (io.ReadCloser, error) {
	list, ok := r.manifest.Lists[name]
	if !ok {
		return nil, derrors.NewNotFoundError(name, fmt.Sprintf("word list %s not in manifest", name))
	}

	cached, entry, cacheErr := r.store.Read(name)
	usable := cacheErr == nil && matchesManifest(entry, list)
	if usable && entry.Fresh(r.ttl, r.now()) {
		r.log.Debug().Str("source", name).Msg("using cached word list")
		return io.NopCloser(bytes.NewReader(cached)), nil
	}

	data, err := r.fetch(list)
	if err != nil {
		if usable {
			r.log.Warn().Str("source", name).Err(err).Msg("download failed, using stale cache")
			return io.NopCloser(bytes.NewReader(cached)), nil
		}
		return nil, err
	}

	if _, err := r.store.Store(name, list.URL, data); err != nil {
		r.log.Warn().Str("source", name).Err(err).Msg("failed to cache word list")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (r *RemoteResolver) fetch(list ManifestList) ([]byte, error) {
	if err := validateURL(list.URL); err != nil {
		return nil, derrors.NewDownloadError(list.URL, "invalid url", err)
	}

	data, err := downloadWithSizeLimit(r.client, list.URL, r.maxSize)
	if err != nil {
		return nil, derrors.NewDownloadError(list.URL, "failed to download word list", err)
	}

	if list.SHA256 != "" {
		sum := sha256.Sum256(data)
		if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, list.SHA256) {
			return nil, derrors.NewDownloadError(list.URL, "checksum mismatch",
				fmt.Errorf("expected %s, got %s", list.SHA256, got))
		}
	}
	return data, nil
}

func matchesManifest(entry *cache.Entry, list ManifestList) bool {
	if entry.URL != list.URL {
		return false
	}
	return list.SHA256 == "" || strings.EqualFold(entry.SHA256, list.SHA256)
}

// validateURL accepts absolute http(s) URLs only
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("URL must use HTTP or HTTPS scheme, got: %s", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}

func downloadWithSizeLimit(client *http.Client, rawURL string, maxSize int64) ([]byte, error) {
	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if resp.ContentLength > maxSize {
		return nil, fmt.Errorf("content too large: %d bytes (max %d)", resp.ContentLength, maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("content too large: exceeds %d bytes", maxSize)
	}
	return data, nil
}
