package main

import (
	"log"

	"minhas-backend/internal/config"
	"minhas-backend/internal/database"
	"minhas-backend/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := server.New(cfg)

	log.Println("Server running on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
