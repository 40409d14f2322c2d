package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/texcomplete/internal/session"
)

// Welcome prints the document a fresh editor session starts with
func Welcome(params CommonParams) error {
	comps, err := initializeComponents(params)
	if err != nil {
		return err
	}

	s := session.New(comps.store, comps.resolver, comps.log)
	s.Open()
	defer s.Close()

	_, err = fmt.Fprint(params.out(), s.Content())
	return err
}
