package resp

import (
	"github.com/xy-planning-network/render"
	"github.com/xy-planning-network/render/diag"
	"github.com/xy-planning-network/render/http/template"
	"github.com/xy-planning-network/render/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithContactErrMsg sets the error message shown on the exception page.
func WithContactErrMsg(msg string) func(*Responder) {
	return func(d *Responder) {
		d.contactErrMsg = msg
	}
}

// WithErrTemplate sets the template identified by the filepath to use for
// rendering when an unexpected, unhandled error occurs.
//
// Without this option, the parser's embedded default exception layout is used.
func WithErrTemplate(fp string) func(*Responder) {
	return func(d *Responder) {
		d.errTmpl = fp
	}
}

// WithEscapePolicy sets the escape policy consulted for plain JSON responses.
//
// If no policy is provided through this option, a default one is constructed
// off the environment.
func WithEscapePolicy(p *render.EscapePolicy) func(*Responder) {
	return func(d *Responder) {
		d.escape = p
	}
}

// WithLogger sets the provided implementation of Logger in order to log all
// statements through it.
//
// If no Logger is provided through this option, a default one will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithParser sets the provided implementation of template.Parser to use for
// parsing the exception page.
func WithParser(p template.Parser) func(*Responder) {
	return func(d *Responder) {
		d.parser = p
	}
}

// WithReporter sets the diag.Reporter deprecation events are emitted through.
//
// If no Reporter is provided through this option, events route to the
// Responder's Logger as warnings.
func WithReporter(rep diag.Reporter) func(*Responder) {
	return func(d *Responder) {
		d.reporter = rep
	}
}
