// Package metrics exposes the process's Prometheus registry over HTTP.
package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const DefaultPath = "/metrics"

type PrometheusController struct {
	path     string
	gatherer prometheus.Gatherer
}

func NewPrometheusController(path string, gatherer prometheus.Gatherer) *PrometheusController {
	if path == "" {
		path = DefaultPath
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &PrometheusController{path: path, gatherer: gatherer}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// Server serves a PrometheusController until its context is cancelled.
type Server struct {
	addr string
	srv  *http.Server
	log  *logrus.Logger
}

func NewServer(addr string, controller *PrometheusController, log *logrus.Logger) *Server {
	r := mux.NewRouter()
	controller.Register(r)
	return &Server{
		addr: addr,
		log:  log,
		srv:  &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second},
	}
}

// Start listens on the configured address and returns the bound address.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", errors.Wrapf(err, "listen %s", s.addr)
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("metrics server stopped")
		}
	}()
	return ln.Addr().String(), nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
