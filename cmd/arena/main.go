package main

import (
	"arena_backend/internal/app"
	"log"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
