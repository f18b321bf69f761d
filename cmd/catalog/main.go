package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/app"
	"github.com/Astemirdum/catalog-service/catalog/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title Catalog API
// @version 1.0
// @description Library catalog: genres, languages, authors, books, copies and loans.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
