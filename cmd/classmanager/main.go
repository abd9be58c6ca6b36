package main

import (
	"log"

	"github.com/6ogunt48/class-manager/internal/app"
	"github.com/6ogunt48/class-manager/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
