package main

import (
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/service"
)

// dev_token prints a bearer token for local testing against the API
func main() {
	userFlag := flag.String("user", "", "user id to issue the token for (random when empty)")
	username := flag.String("username", "dev", "username claim")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Environment == config.Production {
		logrus.Fatal("Refusing to issue development tokens in production")
	}

	userID := uuid.New()
	if *userFlag != "" {
		if userID, err = uuid.Parse(*userFlag); err != nil {
			logrus.Fatalf("Invalid user id: %v", err)
		}
	}

	token, err := service.NewAuthService(cfg.JWTSecret).GenerateToken(userID, *username)
	if err != nil {
		logrus.Fatalf("Failed to generate token: %v", err)
	}
	logrus.WithField("user_id", userID).Info("Issued development token")
	fmt.Println(token)
}
