package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ml-showcase/internal"
	"ml-showcase/runtime/workers"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2

	telemetryInterval = 30 * time.Second
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Showcase terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run owns every resource so that deferred cleanups happen before the exit code is returned.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.Level())

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Components
	app, err := internal.NewApp(ctx, logger, config)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		logger.Info("Closing transcript store...")
		app.Close()
	}()

	// Background workers stop with ctx.
	supervisor := workers.NewSupervisor(logger)
	if config.Debug() {
		supervisor.Add(workers.NewTelemetryWorker(logger, app.Monitoring, telemetryInterval))
	}
	go supervisor.Run(ctx)

	printBanner(config)

	// 4. Serve until a signal arrives
	if err = app.Server.ListenAndServe(ctx, config.Address()); err != nil {
		return exitRuntime, err
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func printBanner(config internal.Config) {
	rule := strings.Repeat("=", 60)
	debug := "OFF"
	if config.Debug() {
		debug = "ON"
	}
	fmt.Println(rule)
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(
		fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)))
	fmt.Printf("Environment: %s\n", config.AppEnv)
	fmt.Printf("Debug mode: %s\n", debug)
	fmt.Printf("Server running at: http://localhost:%d\n", config.Port)
	fmt.Println(rule)
}
