package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/NikitaCOEUR/texcomplete/internal/wordlist"
)

// ListParams contains parameters for the List command
type ListParams struct {
	CommonParams
	Format      string // text, json or yaml
	WithSources bool   // text format only: prefix each token with its word list
}

type listedEntry struct {
	Token  string `json:"token" yaml:"token"`
	Source string `json:"source" yaml:"source"`
}

// List prints the full completion catalog in load order
func List(params ListParams) error {
	comps, err := initializeComponents(params.CommonParams)
	if err != nil {
		return err
	}

	catalog, _ := wordlist.NewLoader(comps.resolver, comps.log).Load(comps.settings.WordLists)
	return writeEntries(params, catalog.Entries())
}

func writeEntries(params ListParams, entries []wordlist.Entry) error {
	out := params.out()

	switch params.Format {
	case "", "text":
		for _, e := range entries {
			if params.WithSources {
				fmt.Fprintf(out, "%s\t%s\n", e.Description, e.Token)
			} else {
				fmt.Fprintln(out, e.Token)
			}
		}
		return nil
	case "json", "yaml":
		listed := make([]listedEntry, len(entries))
		for i, e := range entries {
			listed[i] = listedEntry{Token: e.Token, Source: e.Description}
		}
		if params.Format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(listed)
		}
		enc := yaml.NewEncoder(out)
		defer func() { _ = enc.Close() }()
		return enc.Encode(listed)
	default:
		return fmt.Errorf("unsupported format %q (expected text, json or yaml)", params.Format)
	}
}
