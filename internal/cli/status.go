package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/texcomplete/internal/status"
	"github.com/NikitaCOEUR/texcomplete/internal/wordlist"
)

// Status loads every configured word list and displays what each contributed
func Status(params CommonParams) error {
	comps, err := initializeComponents(params)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	_, report := wordlist.NewLoader(comps.resolver, comps.log).Load(comps.settings.WordLists)
	data := status.Collect(comps.configPath, comps.settings, report, comps.cache)

	fmt.Fprintln(params.out(), status.Render(data))
	return nil
}
