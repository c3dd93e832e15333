package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	MongoURL string
	MongoDB  string
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		log.Fatal("missing required env: MONGO_URL")
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "attendance"
	}
	return AppConfig{
		Port:     port,
		MongoURL: mongoURL,
		MongoDB:  dbName,
	}
}
