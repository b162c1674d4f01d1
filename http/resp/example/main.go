package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/xy-planning-network/render"
	"github.com/xy-planning-network/render/http/resp"
	"github.com/xy-planning-network/render/http/template"
)

// Handler shares the initialized Responder across all example responses.
type Handler struct {
	*resp.Responder
}

// hello is a fully-formed use of Responder.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"hello": "world"}
	if err := h.Json(w, r, resp.Data(data)); err != nil {
		h.Err(w, r, err)
	}
}

// jsonp wraps the payload in the function the client names: ?callback=myFn
func (h *Handler) jsonp(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"hello": "<world> & friends"}
	cb := r.URL.Query().Get("callback")
	if err := h.Json(w, r, resp.Data(data), resp.Callback(cb)); err != nil {
		h.Err(w, r, err)
	}
}

// teapot overrides the default status code.
func (h *Handler) teapot(w http.ResponseWriter, r *http.Request) {
	if err := h.Json(w, r, resp.Code(http.StatusTeapot), resp.Data(map[string]any{"short": "stout"})); err != nil {
		h.Err(w, r, err)
	}
}

// boom shows the exception page rendering in an unrecoverable state.
func (h *Handler) boom(w http.ResponseWriter, r *http.Request) {
	h.Err(w, r, errors.New("the teapot tipped over"))
}

func main() {
	// a missing .env is fine, the defaults hold
	render.LoadEnv()

	policy := render.NewEscapePolicy()
	d := resp.NewResponder(
		resp.WithEscapePolicy(policy),
		resp.WithParser(template.NewParser()),
		resp.WithContactErrMsg("Please contact us at support@example.com."),
	)
	h := &Handler{d}

	r := mux.NewRouter()
	r.HandleFunc("/", h.hello)
	r.HandleFunc("/jsonp", h.jsonp)
	r.HandleFunc("/teapot", h.teapot)
	r.HandleFunc("/boom", h.boom)

	log.Fatal(http.ListenAndServe(":3000", handlers.LoggingHandler(os.Stdout, r)))
}
