package resp

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"

	"github.com/xy-planning-network/render"
	"github.com/xy-planning-network/render/diag"
	"github.com/xy-planning-network/render/encode"
	"github.com/xy-planning-network/render/http/template"
	"github.com/xy-planning-network/render/logger"
)

const responderFrames = 0

const (
	jsonContentType = "application/json; charset=UTF-8"
	jsContentType   = "text/javascript; charset=UTF-8"
	htmlContentType = "text/html; charset=UTF-8"
)

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes common methods for writing structured data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Json
//	Err
//
// Most oftentimes, setting up a single instance of a Responder suffices for
// an application. Meaning, one needs only application-wide configuration of
// how HTTP responses should look.
//
// When handling a specific HTTP request, calling code supplies additional
// data, structure, and so forth through Fn functions.
type Responder struct {
	logger   logger.Logger
	reporter diag.Reporter

	// Escape policy consulted for plain (non-callback) JSON responses
	escape *render.EscapePolicy

	// Initialized template parser for the exception page
	parser template.Parser

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Error message to use for "contact us" style client-side error messages
	contactErrMsg string

	// Template to render when an error occurs
	// and no other response can be formed
	errTmpl string
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.reporter == nil {
		d.reporter = diag.NewLogReporter(d.logger)
	}

	if d.escape == nil {
		d.escape = render.NewEscapePolicy(render.WithReporter(d.reporter))
	}

	if d.errTmpl == "" {
		d.errTmpl = template.ExceptionTmpl
	}

	return d
}

// Err renders the exception page when a parser is configured,
// or wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no Json can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	defer r.Body.Close()
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	if rr == nil {
		rr = new(Response)
	}

	if rr.code == 0 {
		rr.code = http.StatusInternalServerError
	}

	if doer.parser == nil {
		var msg string
		if err != nil {
			msg = err.Error()
		}

		http.Error(w, msg, rr.code)
		return
	}

	doer.renderErrTemplate(w, rr.code, err)
}

// Json responds with data in JSON format, collating it from Data() and
// setting appropriate headers.
//
// A nil value serializes to the literal null. A value implementing
// encode.Serializable controls its own shape and receives field names set
// by Except().
//
// When Callback() names a JSONP function, the payload is wrapped as
// /**/name(payload), served as text/javascript, and always has its
// JS-significant characters escaped. Otherwise the response is served as
// application/json - or the ContentType() override - and escaping follows
// the Responder's escape policy; rendering under an enabled policy reports
// one deprecation event per call.
//
// The status code defaults to 200 unless Code() set one.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	if rr.code == 0 {
		if err := Code(http.StatusOK)(*doer, rr); err != nil {
			return err
		}
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	body, err := encode.ToJSONBuffer(b, rr.data, encode.Options{Except: rr.except})
	if err != nil {
		doer.Err(w, r, err)
		return err
	}

	ct := rr.contentType
	if rr.callback != "" {
		// NOTE(dlk): callback-wrapped output executes as script;
		// escape it no matter the policy.
		body = wrapCallback(rr.callback, encode.EscapeJS(body))
		if ct == "" {
			ct = jsContentType
		}
	} else {
		if doer.escape.Enabled() {
			body = encode.EscapeJS(body)
			doer.reporter.Report(diag.NewDeprecation(render.EscapeDeprecationNotice))
		}

		if ct == "" {
			ct = jsonContentType
		}
	}

	w.Header().Set("Content-Type", ct)
	w.WriteHeader(rr.code)
	if _, err := w.Write(body); err != nil {
		return err
	}

	return nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// do closes the *http.Request.Body, which no calling code can read from again.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
// do nonetheless attempts to retry calling functional options until all do
// not return errors or, a set of options unable to not return errors is
// reached.
//
// Should all options apply successfully, do returns a validly formed *Response.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		closeBody: true,
		w:         w,
		r:         r,
	}

	var err error
	redos := make([]Fn, 0)
	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err = opt(*doer, resp); err != nil {
				redos = append(redos, opt)
			}
		}
	}

	var i int
	for i < len(redos) {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			// NOTE(dlk): because doer.redo mutates the length of redos,
			// confirm we are running up against a set of functions
			// that will not return anything other than errors by checking
			// the length of redos has not changed since calling doer.redo.
			i = len(redos)
			redos = doer.redo(resp, redos...)
		}
	}

	// NOTE(dlk): wrapup errors to send back
	err = nil
	if len(redos) != 0 {
		for i, opt := range redos {
			nested := opt(*doer, resp)
			if i == 0 {
				err = nested
				continue
			}
			err = fmt.Errorf("%w: %s", nested, err)
		}
	}

	if err != nil {
		return resp, err
	}

	return resp, nil
}

// redo applies as many Options as it can, returning those Options that continue to throw an error.
func (doer *Responder) redo(r *Response, opts ...Fn) []Fn {
	bad := make([]Fn, 0)
	for _, opt := range opts {
		if err := opt(*doer, r); err != nil {
			bad = append(bad, opt)
		}
	}

	return bad
}

// renderErrTemplate renders the exception-page template set on the Responder
// and reports errors.
func (doer *Responder) renderErrTemplate(w http.ResponseWriter, code int, err error) {
	tmpl, nested := doer.parser.Parse(doer.errTmpl)
	if nested != nil {
		nested = fmt.Errorf("%w: cannot parse %s: %s", ErrBadConfig, doer.errTmpl, nested)
		doer.logger.Error(nested.Error(), nil)
		http.Error(w, nested.Error(), http.StatusInternalServerError)
		return
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	rd := map[string]any{"Contact": doer.contactErrMsg, "Error": err}
	if nested := tmpl.Execute(b, rd); nested != nil {
		doer.logger.Error(nested.Error(), nil)
		http.Error(w, nested.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(code)
	if _, nested := b.WriteTo(w); nested != nil {
		doer.logger.Error(nested.Error(), nil)
	}
}

// wrapCallback wraps an escaped JSON payload in a call to the named JSONP
// function, prefixed so the open comment defuses content sniffing.
func wrapCallback(name string, payload []byte) []byte {
	wrapped := make([]byte, 0, len(payload)+len(name)+6)
	wrapped = append(wrapped, "/**/"...)
	wrapped = append(wrapped, name...)
	wrapped = append(wrapped, '(')
	wrapped = append(wrapped, payload...)
	wrapped = append(wrapped, ')')
	return wrapped
}
