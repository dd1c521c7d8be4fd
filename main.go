package main

import (
	"crypto/rand"
	"io"
	"os"
	"path/filepath"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/fintrack-app/backend/internal/router"
	"github.com/fintrack-app/backend/internal/tenant"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
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

	// If DB_PATH is set, records are persisted to a sqlite database at that
	// path. Without it everything is kept in process memory and lost on
	// restart, which is fine for development and demos.
	var store ledger.Store
	if path, ok := os.LookupEnv("DB_PATH"); ok {
		err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		store, err = ledger.NewGormStore(path)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	} else {
		log.Warn().Msg("DB_PATH is not set, using the in-memory store. All records are lost when the process exits")
		store = ledger.NewMemoryStore()
	}

	// Without a fixed TOKEN_SECRET all tokens become invalid when the
	// process restarts
	secret := []byte(os.Getenv("TOKEN_SECRET"))
	if len(secret) == 0 {
		log.Warn().Msg("TOKEN_SECRET is not set, generating an ephemeral signing secret")

		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	tenants := tenant.NewRegistry(store, secret)
	controller := v1.NewController(store, reports.NewEngine(store), tenants)

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(controller, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
