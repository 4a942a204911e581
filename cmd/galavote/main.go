package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/galapremios/galavote/internal/app"
	"github.com/galapremios/galavote/internal/config"
	"github.com/galapremios/galavote/internal/logger"
)

var version = "dev"

func main() {
	cfg := config.FromEnv()

	// Flags override the environment
	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	logLevel := flag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	httpLog := flag.Bool("httplog", cfg.HTTPLogEnabled, "Log every HTTP request")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("galavote %s\n", version)
		os.Exit(0)
	}

	cfg.Port = *port
	cfg.DBPath = *dbPath
	cfg.LogLevel = *logLevel
	cfg.HTTPLogEnabled = *httpLog

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))
	if cfg.HTTPLogEnabled {
		appLog.EnableHTTPLogging()
	}

	a, err := app.New(appLog, cfg)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", cfg.Port)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(addr)
	}()

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case sig := <-stop:
		appLog.Info("Shutting down", "signal", sig.String())
		if err := a.Shutdown(context.Background()); err != nil {
			appLog.Error("Shutdown error", "error", err)
		}
	}
}
