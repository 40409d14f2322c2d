package wordlist

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/NikitaCOEUR/texcomplete/internal/derrors"
)

// Resolver opens a word list by its logical name
type Resolver interface {
	Open(name string) (io.ReadCloser, error)
}

// ResolverFunc adapts a plain function to the Resolver interface
type ResolverFunc func(name string) (io.ReadCloser, error)

// Open calls f(name)
func (f ResolverFunc) Open(name string) (io.ReadCloser, error) {
	return f(name)
}

// FSResolver opens word lists from a file system (embedded resources or os.DirFS)
type FSResolver struct {
	FS fs.FS
}

// NewDirResolver returns a resolver rooted at an on-disk directory
func NewDirResolver(dir string) *FSResolver {
	return &FSResolver{FS: os.DirFS(dir)}
}

// Open opens name inside the file system
func (r *FSResolver) Open(name string) (io.ReadCloser, error) {
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid resource name %q", name)
	}
	f, err := r.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.NewNotFoundError(name, fmt.Sprintf("word list %s not found", name))
		}
		return nil, err
	}
	return f, nil
}

// ChainResolver tries each resolver in order and returns the first stream that opens.
// A not-found from one resolver moves on to the next; any other error stops the search.
type ChainResolver []Resolver

// Open opens name from the first resolver that has it
func (c ChainResolver) Open(name string) (io.ReadCloser, error) {
	for _, r := range c {
		rc, err := r.Open(name)
		if err == nil {
			return rc, nil
		}
		if !derrors.IsNotFound(err) {
			return nil, err
		}
	}
	return nil, derrors.NewNotFoundError(name, fmt.Sprintf("word list %s not found", name))
}
