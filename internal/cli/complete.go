package cli

import (
	"github.com/NikitaCOEUR/texcomplete/internal/session"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	CommonParams
	Prefix string
	Limit  int // 0 means no limit
	Format string
}

// Complete prints the catalog entries that start with the prefix, as an
// editor session would offer them
func Complete(params CompleteParams) error {
	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	s := session.New(comps.store, comps.resolver, comps.log)
	s.Open()
	defer s.Close()

	entries := s.Complete(params.Prefix)
	if params.Limit > 0 && len(entries) > params.Limit {
		entries = entries[:params.Limit]
	}

	return writeEntries(ListParams{CommonParams: params.CommonParams, Format: params.Format}, entries)
}
