// Package httpapi exposes the processing service over HTTP: the /api/v1
// endpoints plus static routes for locally stored images.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"testly/internal/logging"
	"testly/internal/server/images"
	"testly/internal/server/storage"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	logger         logging.Logger
	store          storage.Store
	repo           images.Repository
	maxUploadBytes int64
	// staticRoot is the local storage directory served under /uploads/ and
	// /outputs/. Empty when objects live in a remote backend.
	staticRoot string
}

func New(logger logging.Logger, store storage.Store, repo images.Repository, maxUploadBytes int64, staticRoot string) *Server {
	return &Server{
		logger:         logger,
		store:          store,
		repo:           repo,
		maxUploadBytes: maxUploadBytes,
		staticRoot:     staticRoot,
	}
}

// Router builds the full handler chain: API routes, static file routes for
// the local backend, and CORS on the /api surface.
func (s *Server) Router(corsOrigins []string) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/process-image", s.handleProcessImage).Methods("POST")
	api.HandleFunc("/images", s.handleListImages).Methods("GET")

	if s.staticRoot != "" {
		for _, area := range []storage.Area{storage.AreaUploads, storage.AreaOutputs} {
			prefix := "/" + string(area) + "/"
			dir := http.Dir(s.staticRoot + "/" + string(area))
			r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(dir))).Methods("GET")
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	return c.Handler(r)
}
