package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// Middleware envolve o handler de uma rota
type Middleware = alice.Constructor

// Route associa método e caminho a um handler, com middlewares próprios aplicados na ordem da lista
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware
}

// Option configura o Router durante a criação
type Option func(*Router)

// Router expõe o httprouter como http.Handler
type Router struct {
	mux *httprouter.Router
}

func New(opts ...Option) *Router {
	r := &Router{mux: httprouter.New()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.Handle(routes...)
	}
}

// WithNotFound define a resposta para caminhos sem rota
func WithNotFound(h http.Handler) Option {
	return func(r *Router) {
		r.mux.NotFound = h
	}
}

// WithMethodNotAllowed define a resposta para método não registrado em caminho existente
func WithMethodNotAllowed(h http.Handler) Option {
	return func(r *Router) {
		r.mux.MethodNotAllowed = h
	}
}

func (r *Router) Handle(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, alice.New(route.Middlewares...).Then(route.Handler))
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
