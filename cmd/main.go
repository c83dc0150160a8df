package main

import (
	"log"

	"github.com/NzJoaco/food-tracker/config"
	"github.com/NzJoaco/food-tracker/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := routes.SetupRouter(db, []byte(cfg.JWTSecret))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
