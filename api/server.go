package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer builds the HTTP server from PORT and the *_TIMEOUT_SECONDS variables
func NewServer(database database.Database) (Server, error) {
	env := config.New()
	startupTime := time.Now()

	server := &http.Server{
		Addr:         net.JoinHostPort("0.0.0.0", config.GetString(env, "PORT", "8080")),
		Handler:      newRouter(database, withConfig(env), withStartupTime(startupTime)),
		ReadTimeout:  seconds(env, "READ_TIMEOUT_SECONDS", 30),
		WriteTimeout: seconds(env, "WRITE_TIMEOUT_SECONDS", 30),
		IdleTimeout:  seconds(env, "IDLE_TIMEOUT_SECONDS", 120),
	}

	return Server{server, startupTime}, nil
}

func seconds(env map[string]string, key string, defaultValue int) time.Duration {
	return time.Duration(config.GetInt(env, key, defaultValue)) * time.Second
}

type routerOptions struct {
	env         map[string]string
	startupTime time.Time
	logger      *zerolog.Logger
}

type routerOption func(*routerOptions)

func withConfig(env map[string]string) routerOption {
	return func(o *routerOptions) { o.env = env }
}

func withStartupTime(startupTime time.Time) routerOption {
	return func(o *routerOptions) { o.startupTime = startupTime }
}

func withRequestLogger(logger zerolog.Logger) routerOption {
	return func(o *routerOptions) { o.logger = &logger }
}

// requestLogger writes colored console lines unless LOG_FORMAT=json
func (o routerOptions) requestLogger() zerolog.Logger {
	if o.logger != nil {
		return *o.logger
	}
	if config.GetString(o.env, "LOG_FORMAT", "console") == "json" {
		return log.With().Str("component", "http").Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("component", "http").Logger()
}

func newRouter(database database.Database, opts ...routerOption) *chi.Mux {
	options := routerOptions{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&options)
	}

	acceptedOrigins := config.GetStrings(options.env, "ACCEPTED_ORIGINS", []string{"*"})

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(options.requestLogger()))
	r.Use(Recoverer)
	r.Use(RejectUnknownOrigins(acceptedOrigins))
	r.Use(corsMiddleware(acceptedOrigins))

	setupRoutes(r, initializeHandlers(database, options.startupTime))
	return r
}

// Start blocks serving requests and reports why it stopped on errChannel
func (s Server) Start(errChannel chan<- error) {
	log.Info().Str("address", s.Addr).Msg("Server started")

	err := s.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	errChannel <- err
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Dur("timeout", timeout).Msg("Gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error shutting down the server")
		return
	}
	log.Info().
		Dur("uptime", time.Since(s.startupTime)).
		Msg("HTTP server gracefully shut down")
}
