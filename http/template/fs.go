package template

import "embed"

// ExceptionTmpl is the default exception-page layout shipped with the package.
//
// The layout exposes two extension slots: a "style" block in the document
// head and a "content" block in the body.
const ExceptionTmpl = "tmpl/exception.tmpl"

//go:embed tmpl
var pkgFS embed.FS
