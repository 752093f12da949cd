package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/go-mediator/pkg/hub"
	"github.com/klwxsrx/go-mediator/pkg/log"
	"github.com/klwxsrx/go-mediator/pkg/metric"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second

	healthPath  = "/healthz"
	metricsPath = "/metrics"
)

type ServerOption func(*server)

type HandlerRegistry interface {
	Register(handler Handler)
}

type Server interface {
	HandlerRegistry
	http.Handler
	Process() hub.Process
}

type server struct {
	srv          *http.Server
	router       *mux.Router
	logger       log.Logger
	metrics      metric.Metrics
	errorMappers []ErrorStatusMapper
}

func NewServer(address string, opts ...ServerOption) Server {
	router := mux.NewRouter()
	s := &server{
		srv: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router:  router,
		logger:  log.NewStub(),
		metrics: metric.NewMetricsStub(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func WithLogging(logger log.Logger) ServerOption {
	return func(s *server) {
		s.logger = logger
	}
}

func WithMetrics(metrics metric.Metrics) ServerOption {
	return func(s *server) {
		s.metrics = metrics
	}
}

func WithErrorStatusMapper(mapper ErrorStatusMapper) ServerOption {
	return func(s *server) {
		s.errorMappers = append(s.errorMappers, mapper)
	}
}

func WithHealthCheck() ServerOption {
	return func(s *server) {
		s.router.
			Name(getRouteName(http.MethodGet, healthPath)).
			Methods(http.MethodGet).
			Path(healthPath).
			HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, struct {
					Status string `json:"status"`
				}{
					Status: "OK",
				})
			})
	}
}

// WithMetricsHandler exposes handler, usually promhttp.Handler(), on /metrics.
func WithMetricsHandler(handler http.Handler) ServerOption {
	return func(s *server) {
		s.router.
			Name(getRouteName(http.MethodGet, metricsPath)).
			Methods(http.MethodGet).
			Path(metricsPath).
			Handler(handler)
	}
}

func (s *server) Register(handler Handler) {
	routeName := getRouteName(handler.Method(), handler.Path())
	s.router.
		Name(routeName).
		Methods(handler.Method()).
		Path(handler.Path()).
		HandlerFunc(s.wrap(routeName, handler.HTTPHandler()))
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) Process() hub.Process {
	return hub.NewProcess(fmt.Sprintf("http server %s", s.srv.Addr), func(stopChan <-chan struct{}) error {
		serverDoneChan := make(chan error, 1)
		go func() {
			err := s.srv.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			serverDoneChan <- err
		}()

		select {
		case err := <-serverDoneChan:
			return err
		case <-stopChan:
			ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
			defer cancel()

			err := s.srv.Shutdown(ctx)
			if err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		}
	})
}

func (s *server) wrap(routeName string, handler HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{impl: w, httpCode: http.StatusOK}

		code, err := s.serve(rw, r, handler)
		logger := s.logger.
			WithField("route", routeName).
			WithField("code", code)
		if err != nil {
			logger.WithError(err).Warn(r.Context(), "request failed")
		} else {
			logger.Info(r.Context(), "request handled")
		}

		s.metrics.With(metric.Labels{
			"route": routeName,
			"code":  code,
		}).Duration("http_api_request_duration_seconds", time.Since(started))
	}
}

func (s *server) serve(rw *responseWriter, r *http.Request, handler HandlerFunc) (code int, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		s.logger.WithField("panic", log.Fields{
			"message": p,
			"stack":   string(debug.Stack()),
		}).Error(r.Context(), "http handler panicked")
		err = fmt.Errorf("http handler panicked: %v", p)
		code = http.StatusInternalServerError
		writeJSON(rw.impl, code, errorOut{Error: "internal error"})
	}()

	err = handler(rw, r)
	return rw.write(err, s.errorMappers), err
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}
