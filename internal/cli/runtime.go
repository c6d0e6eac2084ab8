package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/configuration"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/logging"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/metrics"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/session"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/upload"
)

// Runtime is one CLI invocation's application and its collaborators.
type Runtime struct {
	Conf     *configuration.Configuration
	App      application.Application
	Session  *session.Session
	History  *navigation.History
	Notes    *notify.Bus
	Registry *prometheus.Registry

	logger   *logrus.Logger
	cleanups []func()
}

type RuntimeOptions struct {
	// Out receives notifications. Nil discards them.
	Out io.Writer
	// HTTPClient overrides the client used for API calls.
	HTTPClient *http.Client
	// Metrics serves the registry on the configured address until Close.
	Metrics bool
}

// NewRuntime wires the API client, session, history and every built-in
// module from conf.
func NewRuntime(conf *configuration.Configuration, opts RuntimeOptions) (*Runtime, error) {
	logger := conf.Logger()
	if logger == nil {
		logger = logging.Discard()
	}
	sess, err := session.New(session.NewFilePersister(conf.SessionFile()))
	if err != nil {
		return nil, err
	}
	history := navigation.NewHistory("/")
	if _, ok := sess.Token(); ok {
		history.Replace("/dashboard")
	}
	rt := &Runtime{
		Conf:     conf,
		Session:  sess,
		History:  history,
		Notes:    notify.NewBus(logger),
		Registry: prometheus.NewRegistry(),
		logger:   logger,
	}
	if opts.Out != nil {
		out := opts.Out
		rt.Notes.Subscribe(func(n notify.Notification) {
			if n.Level == notify.Loading {
				return
			}
			fmt.Fprintf(out, "[%s] %s\n", n.Level, n.Message)
		})
	}

	if conf.OpenTelemetry.Enabled {
		rt.cleanups = append(rt.cleanups, logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		))
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	client, err := apiclient.New(apiclient.Options{
		BaseURL:    conf.API.BaseURL,
		LoginPath:  conf.API.LoginPath,
		Timeout:    conf.API.RequestTimeout,
		HTTPClient: opts.HTTPClient,
		Session:    sess,
		Navigator:  history,
		Logger:     logger,
		Registerer: rt.Registry,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.App = application.New(&application.ApplicationOptions{
		Client:    client,
		Navigator: history,
		Notifier:  rt.Notes,
		Storage:   upload.New(client, conf.Upload.Path, conf.Upload.MaxSize),
		Logger:    logger,
	})
	if err := modules.Load(rt.App, modules.BuiltIn(conf)...); err != nil {
		rt.Close()
		return nil, err
	}

	if opts.Metrics || conf.Prometheus.Enabled {
		if err := rt.serveMetrics(); err != nil {
			rt.Close()
			return nil, err
		}
	}
	return rt, nil
}

func (rt *Runtime) serveMetrics() error {
	controller := metrics.NewPrometheusController(rt.Conf.Prometheus.Path, rt.Registry)
	srv := metrics.NewServer(rt.Conf.Prometheus.Addr, controller, rt.logger)
	addr, err := srv.Start()
	if err != nil {
		return err
	}
	rt.logger.WithField("addr", addr).Info("serving metrics")
	rt.cleanups = append(rt.cleanups, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			rt.logger.WithError(err).Warn("metrics server shutdown")
		}
	})
	return nil
}

// Close stops the metrics server, flushes traces and closes the log file.
func (rt *Runtime) Close() {
	for i := len(rt.cleanups) - 1; i >= 0; i-- {
		rt.cleanups[i]()
	}
	rt.cleanups = nil
	rt.Conf.Unload()
}

// Controller returns the controller mounted at key as T.
func Controller[T application.Controller](rt *Runtime, key string) (T, error) {
	var zero T
	c, ok := rt.App.Controller(key)
	if !ok {
		return zero, fmt.Errorf("no screen at %s", key)
	}
	typed, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("screen %s has type %T", key, c)
	}
	return typed, nil
}

// RequireSession fails when nobody is signed in.
func (rt *Runtime) RequireSession() error {
	if _, ok := rt.Session.Token(); !ok {
		return ErrSignedOut
	}
	return nil
}
