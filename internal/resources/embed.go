// Package resources holds the word lists and templates compiled into the binary.
package resources

import (
	"embed"
	"io/fs"
)

// Bundled word lists, loaded in this order when no configuration overrides them
const (
	TeXWordList         = "tex.cwl"
	DocumentWordList    = "latex-document.cwl"
	MathSymbolsWordList = "latex-mathsymbols.cwl"

	welcomeTemplateName = "welcome.tex.tmpl"
)

//go:embed data/wordlists/*.cwl data/welcome.tex.tmpl
var bundled embed.FS

// DefaultWordLists returns the bundled word list names in load order
func DefaultWordLists() []string {
	return []string{TeXWordList, DocumentWordList, MathSymbolsWordList}
}

// FS returns the bundled word lists; templates are not reachable through it
func FS() fs.FS {
	sub, err := fs.Sub(bundled, "data/wordlists")
	if err != nil {
		// data/wordlists is embedded at build time
		panic(err)
	}
	return sub
}

// WelcomeTemplate returns the bundled welcome document template
func WelcomeTemplate() string {
	data, err := bundled.ReadFile("data/" + welcomeTemplateName)
	if err != nil {
		panic(err)
	}
	return string(data)
}
