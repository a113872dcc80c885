package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/msom-squad-service/internal/http/handlers"
)

const logosPrefix = "/logos/"

// NewRouter registers the page, API and static logo routes. logoDir may be
// empty, in which case /logos/ answers 404.
func NewRouter(handler *handlers.Handler, logoDir string) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Page).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/wins", handler.Wins).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/games", handler.Games).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)

	if logoDir != "" {
		logos := nethttp.StripPrefix(logosPrefix, nethttp.FileServer(nethttp.Dir(logoDir)))
		r.PathPrefix(logosPrefix).Handler(logos).Methods(nethttp.MethodGet)
	}
	return r
}
