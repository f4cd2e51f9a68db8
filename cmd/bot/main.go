package main

import (
	"log"

	"questbot/bot"
	corecmd "questbot/core/cmd"
	"questbot/core/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; deployments usually inject real environment variables.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			cfg, err := bot.LoadConfig(path)
			if err != nil {
				return nil, err
			}
			if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
				return nil, err
			}
			return cfg, nil
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			return bot.NewApp(carrier.(*bot.Config))
		},
	})
	if err != nil {
		log.Fatalf("bot: %v", err)
	}
}
