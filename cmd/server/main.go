package main

import (
	"os"

	"todo-planner-api/internal/database"
	"todo-planner-api/internal/routes"
	"todo-planner-api/internal/session"
	"todo-planner-api/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})

	// Init database and per-user session manager
	database.InitDB()
	session.Init(store.NewGormStore(database.GetDB()), log.Logger)

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8008"
	}

	log.Info().Str("port", port).Msg("server starting")

	if err := ginRoutes.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
