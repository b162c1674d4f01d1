package template

import "io/fs"

// A ParserOptFn mutates the provided *Parse in some way.
// A ParserOptFn is used when constructing a new Parse.
type ParserOptFn func(*Parse)

// WithFn makes the provided function available to parsed templates under name.
func WithFn(name string, fn any) func(*Parse) {
	return func(p *Parse) {
		p.fns[name] = fn
	}
}

// WithFS sets the fs.FS templates are read out of.
func WithFS(fsys fs.FS) func(*Parse) {
	return func(p *Parse) {
		p.fs = fsys
	}
}
