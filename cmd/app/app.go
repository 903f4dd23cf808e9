package app

import (
	"classroom/packages/common/config"
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/DB"
	"classroom/packages/infrastructure/cache"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
)

var appLogger = logger.NewSource("APP", logger.Default)

const shutdownTimeout = 5 * time.Second

func Start(Router *echo.Echo) {
	stop := make(chan os.Signal, 1)

	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	failed := make(chan error, 1)

	go func() {
		if err := Router.Start(":" + config.HTTP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	printAppInfo()

	select {
	case sig := <-stop:
		fmt.Println()
		appLogger.Info(sig.String()+" signal received, shutting down...", nil)
	case err := <-failed:
		appLogger.Error("HTTP server failed", err.Error(), nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := Router.Shutdown(ctx); err != nil {
		appLogger.Error("Failed to stop HTTP server", err.Error(), nil)
	} else {
		appLogger.Info("HTTP server stopped", nil)
	}

	Shutdown()
}

func Shutdown() {
	appLogger.Info("Shutting down...", nil)

	if DB.Database.IsConnected() {
		if err := DB.Database.Disconnect(); err != nil {
			appLogger.Error("Failed to disconnect from DB", err.Error(), nil)
		}
	}

	if err := cache.Client.Close(); err != nil {
		appLogger.Error("Failed to disconnect from cache", err.Error(), nil)
	}

	appLogger.Info("Shut down", nil)

	if logger.Default.IsRunning() {
		if err := logger.Default.Stop(); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to stop logger: "+err.Error())
		}
	}
}

func printAppInfo() {
	fmt.Print(`
   ██████╗ ██╗       █████╗  ███████╗ ███████╗ ██████╗   ██████╗   ██████╗  ███╗   ███╗
  ██╔════╝ ██║      ██╔══██╗ ██╔════╝ ██╔════╝ ██╔══██╗ ██╔═══██╗ ██╔═══██╗ ████╗ ████║
  ██║      ██║      ███████║ ███████╗ ███████╗ ██████╔╝ ██║   ██║ ██║   ██║ ██╔████╔██║
  ██║      ██║      ██╔══██║ ╚════██║ ╚════██║ ██╔══██╗ ██║   ██║ ██║   ██║ ██║╚██╔╝██║
  ╚██████╗ ███████╗ ██║  ██║ ███████║ ███████║ ██║  ██║ ╚██████╔╝ ╚██████╔╝ ██║ ╚═╝ ██║
   ╚═════╝ ╚══════╝ ╚═╝  ╚═╝ ╚══════╝ ╚══════╝ ╚═╝  ╚═╝  ╚═════╝   ╚═════╝  ╚═╝     ╚═╝

`)

	fmt.Println("  Blog API: users, posts and comments")

	fmt.Printf("  Listening on port: %s\n\n", config.HTTP.Port)

	if config.Debug.Enabled {
		appLogger.Warning("Debug mode enabled, API docs are available at /docs/index.html", nil)
		fmt.Print("\n\n")
	}
}
