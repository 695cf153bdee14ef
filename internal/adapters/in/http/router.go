package http

import (
	"context"
	"log/slog"
	"net/http"

	"shop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API, health, metrics and Swagger UI.
func NewRouter(server *Server, metrics *Metrics, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", validator)

	api.GET("/members", server.ListMembers)
	api.POST("/members", server.RegisterMember)
	api.PUT("/members/:id", server.UpdateMemberName)

	api.GET("/items", server.ListItems)
	api.POST("/items", server.CreateItem)

	api.POST("/orders", server.PlaceOrder)
	api.POST("/orders/:id/cancel", server.CancelOrder)
	api.POST("/orders/:id/delivery/complete", server.CompleteDelivery)

	api.GET("/v1/orders", server.ListOrderEntities)
	api.GET("/v2/orders", server.ListOrders(queries.LazyLoad))
	api.GET("/v3/orders", server.ListOrders(queries.FetchJoin))
	api.GET("/v3.1/orders", server.ListOrders(queries.BatchFetch))
	api.GET("/v4/orders", server.ListOrders(queries.DirectPerOrder))
	api.GET("/v5/orders", server.ListOrders(queries.Direct))
	api.GET("/v6/orders", server.ListOrderRows)
	api.GET("/v6.1/orders", server.ListOrders(queries.Flat))

	api.GET("/v2/simple-orders", server.ListOrderSummaries(queries.LazyLoad))
	api.GET("/v3/simple-orders", server.ListOrderSummaries(queries.FetchJoin))
	api.GET("/v4/simple-orders", server.ListOrderSummaries(queries.Direct))

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRoutePath: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError || v.Error != nil {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.Any("error", v.Error),
			)
			return nil
		},
	})
}
