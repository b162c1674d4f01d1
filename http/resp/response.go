package resp

import (
	"fmt"
	"net/http"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while
// applying all functional options.
type Response struct {
	w           http.ResponseWriter
	r           *http.Request
	closeBody   bool
	callback    string
	code        int
	contentType string
	data        any
	except      []string
}

// Callback names the client-side function the JSON payload is wrapped in,
// producing a JSONP response served as text/javascript.
//
// Callback-wrapped output executes as script,
// so it is always escaped no matter the configured escape policy.
//
// Used with Responder.Json.
func Callback(name string) Fn {
	return func(_ Responder, r *Response) error {
		if name == "" {
			return fmt.Errorf("%w: callback requires a function name", ErrInvalid)
		}

		r.callback = name
		return nil
	}
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// ContentType overrides the Content-Type header the response is served with.
//
// Used with Responder.Json.
func ContentType(ct string) Fn {
	return func(_ Responder, r *Response) error {
		if ct == "" {
			return fmt.Errorf("%w: content type requires a MIME string", ErrInvalid)
		}

		r.contentType = ct
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Except names the top-level fields the value should drop from its
// serialized form. The names are forwarded to the value's own serialization
// hook; values without one ignore them.
//
// If Data() has not been called with a value, ErrMissingData returns.
//
// Used with Responder.Json.
func Except(fields ...string) Fn {
	return func(_ Responder, r *Response) error {
		if r.data == nil {
			return fmt.Errorf("%w: no data to drop fields from", ErrMissingData)
		}

		r.except = append(r.except, fields...)
		return nil
	}
}
