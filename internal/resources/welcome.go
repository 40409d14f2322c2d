package resources

import (
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// WelcomeData feeds the welcome document template
type WelcomeData struct {
	Title     string
	Author    string
	Date      string
	Delay     time.Duration
	WordLists []string
}

// RenderWelcome executes tmpl with sprig helpers available
func RenderWelcome(tmpl string, data WelcomeData) (string, error) {
	t, err := template.New("welcome").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(tmpl)
	if err != nil {
		return "", err
	}

	if data.Date == "" {
		data.Date = time.Now().Format("2006-01-02")
	}

	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
