package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/leaguelens/leaguelens/internal/service"
)

// Server exposes the normalized league over HTTP.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
	router  *mux.Router
}

func NewServer(port string, fantasyService *service.FantasyService) *Server {
	handler := NewHandler(fantasyService)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/connect", handler.Connect).Methods("POST")
	api.HandleFunc("/refresh", handler.Refresh).Methods("POST")
	api.HandleFunc("/league", handler.GetLeague).Methods("GET")
	api.HandleFunc("/standings", handler.GetStandings).Methods("GET")

	api.HandleFunc("/teams/{teamName}/roster", handler.GetTeamRoster).Methods("GET")

	api.HandleFunc("/players/search", handler.SearchPlayers).Methods("GET")
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		router:  router,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Router returns the configured route tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
