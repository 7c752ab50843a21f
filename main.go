package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kucukaslan/nodeapp/api"
	"kucukaslan/nodeapp/buildinfo"
	"kucukaslan/nodeapp/config"
	"kucukaslan/nodeapp/database"
	"kucukaslan/nodeapp/domain"
	"kucukaslan/nodeapp/logger"
	"kucukaslan/nodeapp/metrics"
	"kucukaslan/nodeapp/services"
)

// @title node_app API
// @version 1.0
// @description Hello service with a MongoDB connectivity check
// @BasePath /
// @schemes http

// application is everything built at startup and torn down at shutdown
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	mongo    *database.MongoDB
	redis    *database.Redis
	watchers []*services.ConnectionWatcher
}

func main() {
	buildinfo.SetStartTime(time.Now())

	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load configuration: %v", err)
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
	appLogger.Info("Starting application", slog.String("build", buildinfo.GetInfo().String()))

	a := &application{cfg: cfg, logger: appLogger}
	a.connectDatabases()

	// a nil mongo handle reports itself as not initialized
	checkers := map[string]domain.HealthChecker{"mongodb": a.mongo}
	if a.redis != nil {
		checkers["redis"] = a.redis
	}

	app := api.NewApp(api.Dependencies{
		Config:  cfg,
		Logger:  appLogger,
		Hello:   api.NewHelloHandler(),
		Health:  api.NewHealthHandler(services.NewHealthService(checkers, 0)),
		Metrics: metrics.New(),
	})

	// Listen from a different goroutine
	go func() {
		if err := app.Listen(cfg.Address()); err != nil {
			appLogger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	appLogger.Info("Gracefully shutting down...")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		appLogger.Error("error shutting down server", slog.String("error", err.Error()))
	}

	a.close()
	appLogger.Info("server shutdown complete")
}

// connectDatabases starts the connect attempts without waiting for them.
// Failures are logged by the watchers and never stop the server.
func (a *application) connectDatabases() {
	mongo, err := database.NewMongo(&a.cfg.Mongo)
	if err != nil {
		a.logger.Error("MongoDB connection error", slog.String("error", err.Error()))
	} else {
		a.mongo = mongo
		a.watch(services.NewConnectionWatcher("MongoDB", "Connected to MongoDB",
			mongo.Connect(context.Background()), a.logger))
	}

	if r := database.NewRedis(&a.cfg.Redis); r != nil {
		a.redis = r
		a.watch(services.NewConnectionWatcher("Redis", "Connected to Redis",
			r.Connect(context.Background()), a.logger))
	}
}

func (a *application) watch(w *services.ConnectionWatcher) {
	w.Start()
	a.watchers = append(a.watchers, w)
}

func (a *application) close() {
	for _, w := range a.watchers {
		w.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.mongo.Close(ctx); err != nil {
		a.logger.Error("error closing MongoDB", slog.String("error", err.Error()))
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Error("error closing Redis", slog.String("error", err.Error()))
	}
}
