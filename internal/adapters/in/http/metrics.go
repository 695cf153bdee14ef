package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"shop/internal/adapters/out/postgres/querystats"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP and SQL statement metrics of the server.
type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	statements *prometheus.HistogramVec
	logger     *slog.Logger
}

func NewMetrics(logger *slog.Logger) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Handled HTTP requests.",
	}, []string{"method", "route", "status"})

	statements := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shop",
		Subsystem: "db",
		Name:      "statements_per_request",
		Help:      "SQL statements executed while handling one request.",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34, 55},
	}, []string{"route"})

	registry.MustRegister(requests, statements)

	if logger == nil {
		logger = slog.Default()
	}

	return &Metrics{
		registry:   registry,
		requests:   requests,
		statements: statements,
		logger:     logger.With("component", "metrics"),
	}
}

// Middleware counts the request and the SQL statements it caused.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, counter := querystats.WithCounter(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			m.requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.statements.WithLabelValues(route).Observe(float64(counter.Count()))

			m.logger.DebugContext(ctx, "sql statements",
				slog.String("route", route),
				slog.Int64("statements", counter.Count()),
			)

			return nil
		}
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
