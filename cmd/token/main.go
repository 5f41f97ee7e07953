// Command token mints a bearer token for local development.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"workstream/internal/config"
	"workstream/pkg/auth"
)

func main() {
	email := flag.String("email", "", "email carried by the token")
	firstName := flag.String("first-name", "", "optional given name claim")
	lastName := flag.String("last-name", "", "optional family name claim")
	ttl := flag.Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	token, err := auth.NewTokenManager(cfg.JWTSecret, *ttl).GenerateToken(auth.Claims{
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
	})
	if err != nil {
		logger.Fatal("failed to generate token", zap.String("email", *email), zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, token)
}
