package app

import (
	"classroom/packages/common/config"
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/DB"
	"classroom/packages/infrastructure/cache"
	"classroom/packages/presentation/api/http/router"

	"github.com/labstack/echo/v4"
)

func StartInit() {
	// All init logs will be shown anyway
	if err := logger.Default.NewForwarding(logger.Stdout); err != nil {
		panic(err.Error())
	}
}

func EndInit() {
	if !config.App.ShowLogs {
		if err := logger.Default.RemoveForwarding(logger.Stdout); err != nil {
			panic(err.Error())
		}
	}
}

func InitDefault(configPath string) {
	config.Init(configPath)

	Args.Apply()

	logger.Debug.Store(config.Debug.Enabled)
	logger.Trace.Store(config.App.TraceLogsEnabled)
}

func InitLogger() {
	if config.App.LogDir == "" {
		appLogger.Info("Log dir isn't set, file logs are disabled", nil)
		return
	}

	appLogger.Info("Starting file logger...", nil)

	if err := logger.Default.Start(config.App.LogDir); err != nil {
		appLogger.Fatal("Failed to start file logger", err.Error(), nil)
	}

	appLogger.Info("Starting file logger: OK", nil)
}

func InitConnections() {
	appLogger.Info("Initializing connections...", nil)

	cache.Init()

	if err := cache.Client.Connect(); err != nil {
		appLogger.Fatal("Failed to connect to cache", err.Error(), nil)
	}

	if err := DB.Database.Connect(); err != nil {
		appLogger.Fatal("Failed to connect to DB", err.Error(), nil)
	}

	appLogger.Info("Initializing connections: OK", nil)
}

func InitRouter() *echo.Echo {
	appLogger.Info("Initializing router...", nil)

	Router := router.Create()

	appLogger.Info("Initializing router: OK", nil)

	return Router
}
