package main

import (
	"io"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/config"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/internal/router"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database")
		err = models.ConnectPostgres(cfg.Database.DSN())
	} else {
		err = os.MkdirAll(cfg.DataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		log.Info().Str("path", cfg.SQLitePath()).Msg("Database")
		err = models.Connect(cfg.SQLitePath())
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg.APIURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Error().Msg(err.Error())
	}
}
