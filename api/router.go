package api

import (
	"log/slog"
	"strconv"

	"kucukaslan/nodeapp/config"
	"kucukaslan/nodeapp/metrics"

	_ "kucukaslan/nodeapp/docs" // registers the swagger document

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Route is one entry of the static route table
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

// Dependencies are the collaborators the HTTP layer needs
type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Hello   HelloHandler
	Health  HealthHandler
	Metrics *metrics.Metrics
}

// Routes returns the route table in registration order
func Routes(deps Dependencies) []Route {
	return []Route{
		{fiber.MethodGet, "/", deps.Hello.Hello},
		{fiber.MethodGet, "/health", deps.Health.HealthCheck},
		{fiber.MethodGet, "/metrics", deps.Metrics.Handler()},
		{fiber.MethodGet, "/swagger/*", swagger.HandlerDefault},
	}
}

// NewApp builds the fiber application: middleware first, then the route table.
// The listen hook logs once the socket is bound.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "node_app",
		IdleTimeout:           deps.Config.IdleTimeout,
		DisableStartupMessage: true,
	})

	app.Use(RequestLogger(deps.Logger))
	app.Use(deps.Metrics.Middleware())
	// inside the logger and metrics so recovered panics are logged and counted as 500
	app.Use(recover.New())
	app.Use(JSONBody(deps.Config.JSONBodyLimit))

	for _, r := range Routes(deps) {
		if r.Method == fiber.MethodGet {
			// Get also registers HEAD
			app.Get(r.Path, r.Handler)
			continue
		}
		app.Add(r.Method, r.Path, r.Handler)
	}

	app.Hooks().OnListen(func(data fiber.ListenData) error {
		port, err := strconv.Atoi(data.Port)
		if err != nil {
			port = deps.Config.Port
		}
		deps.Logger.Info("Node.js server running on port "+strconv.Itoa(port), slog.Int("port", port))
		return nil
	})

	return app
}
