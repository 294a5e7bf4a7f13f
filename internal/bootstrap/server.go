package bootstrap

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/mohammadpnp/user-registry/internal/application/user"
	"github.com/mohammadpnp/user-registry/internal/config"
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/mohammadpnp/user-registry/internal/infrastructure/metrics"
	"github.com/mohammadpnp/user-registry/internal/infrastructure/spreadsheet"
	httpecho "github.com/mohammadpnp/user-registry/internal/interfaces/http/echo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Dependencies struct {
	Config       config.Configuration
	Logger       *logrus.Logger
	Users        domain.UserRepository
	BulkInserter domain.BulkUserInserter
}

// NewImportUseCase assembles the spreadsheet import pipeline. observer may be
// nil when metrics are disabled.
func NewImportUseCase(
	cfg config.Configuration,
	logger logrus.FieldLogger,
	users domain.UserRepository,
	inserter domain.BulkUserInserter,
	observer app.ImportObserver,
) app.ImportUsersFromSpreadsheet {
	return app.NewImportUsersFromSpreadsheet(
		spreadsheet.NewReader(),
		users,
		inserter,
		observer,
		logger,
		app.ImportUsersFromSpreadsheetConfig{ConflictCheckConcurrency: cfg.Import.ConflictCheckConcurrency},
	)
}

func NewHTTPServer(deps Dependencies) *echo.Echo {
	cfg := deps.Config

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(cfg.HTTP.BodyLimit))
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowedOrigins,
	}))
	server.Use(httpecho.RequestLogger(deps.Logger))

	var observer app.ImportObserver
	if cfg.Prometheus.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		observer = metrics.NewImportMetrics(registry)
		server.GET(cfg.Prometheus.Path, echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	importHandler := httpecho.NewImportHandler(
		NewImportUseCase(cfg, deps.Logger, deps.Users, deps.BulkInserter, observer),
		app.NewGenerateTemplate(spreadsheet.NewWriter()),
	)
	userHandler := httpecho.NewUserHandler(httpecho.UserUseCases{
		List:   app.NewListUsers(deps.Users),
		Get:    app.NewGetUserByID(deps.Users),
		Create: app.NewCreateUser(deps.Users),
		Update: app.NewUpdateUser(deps.Users),
		Delete: app.NewDeleteUser(deps.Users),
	})

	httpecho.RegisterRoutes(server, importHandler, userHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return server
}
