package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/biblioteca/library/app"
	"github.com/Astemirdum/biblioteca/library/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title Biblioteca
// @version 1.0
// @description Library catalog: books, authors, accounts and reservations.
// @BasePath /
// @securityDefinitions.apikey session
// @in cookie
// @name biblioteca_session
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithSeedPath("tabela_livros.csv"),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("run ", err)
	}
}
