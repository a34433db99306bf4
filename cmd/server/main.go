package main

import (
	"go.uber.org/zap"

	"github.com/freshkeep/freshkeep-backend/cmd/config"
	"github.com/freshkeep/freshkeep-backend/internal/utils"
	"github.com/freshkeep/freshkeep-backend/pkg/logger"
)

func main() {
	utils.LoadConfig()

	appLogger := logger.Must(logger.New())
	defer appLogger.Sync()

	kv, err := config.ConnectStore()
	if err != nil {
		appLogger.Fatal("failed to open store", zap.Error(err))
	}
	defer kv.Close()

	app, digestScheduler, err := config.NewApp(kv, appLogger)
	if err != nil {
		appLogger.Fatal("failed to build application", zap.Error(err))
	}

	digestScheduler.Start()
	defer digestScheduler.Stop()

	port := utils.GetConfig("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		appLogger.Fatal("server stopped", zap.Error(err))
	}
}
