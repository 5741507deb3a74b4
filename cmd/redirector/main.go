package main

import (
	"log"

	"qrlink/internal/app"
	"qrlink/internal/config"
	"qrlink/internal/handlers"
	"qrlink/internal/logger"
	"qrlink/internal/target"

	"github.com/go-chi/chi/v5"
)

func main() {
	c := config.NewConfig()
	if err := config.Init(c); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	src := target.NewFileSource(c.TargetFile)
	controller := handlers.NewController(c, src, sugar)

	r := chi.NewRouter()
	app.InitMiddleware(r, controller)
	app.Routing(r, controller)

	srv := app.CreateServer(c, r, sugar)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
