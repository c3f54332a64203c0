package main

import (
	"github.com/quasar-gd/quasar_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},
		&services.MonitoringService{},

		&services.JWTService{},
		&services.AuthService{},

		&services.RequestManagerService{},
		&services.GeometryDashService{},
		&services.LevelRequestService{},
		&services.LevelReviewService{},
		&services.ModerationService{},
		&services.ReviewerService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service runtime error")
		return
	}
}
