package server

import (
	"net/http"

	"github.com/morfeolab/morfeo/config"
	"github.com/morfeolab/morfeo/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},

		AllowCredentials: true,
	}))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	r.Route("/morfeo", h.Attach)

	return &Server{
		Config: cfg,

		handler: otelhttp.NewHandler(r, "server"),
	}, nil
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Address, s.handler)
}
