package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"path"
)

// Parser is the interface for parsing HTML templates with the functions provided.
type Parser interface {
	AddFn(name string, fn any)
	Parse(fps ...string) (*html.Template, error)
}

// Parse implements Parser with a focus on utilizing embedded HTML templates through fs.FS.
type Parse struct {
	fs  fs.FS
	fns html.FuncMap
}

// NewParser constructs a Parse with the provided functional options.
//
// Without WithFS, the Parse reads from the package's embedded templates,
// which hold the default exception-page layout.
func NewParser(opts ...ParserOptFn) Parser {
	p := &Parse{fns: make(html.FuncMap)}
	for _, opt := range opts {
		opt(p)
	}

	if p.fs == nil {
		p.fs = pkgFS
	}

	return p
}

// AddFn stores the function under name for use in parsed templates.
func (p *Parse) AddFn(name string, fn any) { p.fns[name] = fn }

// Parse parses files found in the *Parse.fs with those functions provided previously.
func (p *Parse) Parse(fps ...string) (*html.Template, error) {
	filtered := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			filtered = append(filtered, fp)
		}
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(filtered[0])).Funcs(p.fns).ParseFS(p.fs, filtered...)
}
