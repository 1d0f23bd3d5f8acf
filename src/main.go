package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"personal/discord_wire/src/cli"
	"personal/discord_wire/src/config"
	"personal/discord_wire/src/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if !cfg.EnvFileLoaded {
		logger.Debug("no .env file found, using environment only")
	}

	if err := cli.NewRootCommand(cfg, logger).Execute(); err != nil {
		logger.Debug("command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
