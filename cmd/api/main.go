package main

import (
	"context"
	"expvar"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"greeter/docs"
	"greeter/internal/data"
	"greeter/internal/vcs"

	"github.com/joho/godotenv"
)

var (
	revision = vcs.Revision()
)

type application struct {
	config config
	logger *slog.Logger
	clock  *data.Clock
}

//	@title			Greeter API
//	@description	Greeting and liveness endpoints reporting the deployed version.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io
func main() {
	_ = godotenv.Load(".env")
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := loadConfig(os.LookupEnv)
	docs.SwaggerInfo.Version = cfg.version

	expvar.NewString("version").Set(cfg.version)
	expvar.NewString("revision").Set(revision)
	expvar.Publish("timestamp", expvar.Func(func() any { return time.Now().Unix() }))
	expvar.Publish("goroutines", expvar.Func(func() any { return runtime.NumGoroutine() }))

	app := &application{
		config: cfg,
		logger: logger,
		clock:  data.NewClock(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := app.serve(ctx)
	stop()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
