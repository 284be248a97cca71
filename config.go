package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	APIURL   string
	ProxyAPI bool
}

func loadConfig() Config {
	godotenv.Load()

	return Config{
		Addr:     getEnv("ADDR", ":3000"),
		APIURL:   getEnv("CRM_API_URL", "http://localhost:8000"),
		ProxyAPI: getEnvBool("CRM_API_PROXY", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
