// tokengen выпускает access токен на адрес игрока для локальных проверок API
package main

import (
	"arena_backend/internal/config"
	"arena_backend/internal/config/env"
	"arena_backend/pkg/token"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	address := flag.String("address", "", "gambler wallet address")
	envPath := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	if *address == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = config.Load(*envPath)
	cfg, err := env.NewJWTConfig()
	if err != nil {
		log.Fatalf("jwt config: %v", err)
	}

	tok, err := token.GenerateAccessToken(*address, cfg.AccessTokenSecretKey(), cfg.AccessTokenDuration())
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(tok)
}
