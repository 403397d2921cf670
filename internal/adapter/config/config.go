package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Token    *Token
	Cors     *Cors
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Token struct {
	AccessDuration  time.Duration `env:"ACCESS_TOKEN_DURATION"`
	RefreshDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`
}

type Cors struct {
	FrontendURL string `env:"FRONTEND_URL"`
}

// NewConfig reads flags and environment, environment wins.
// A .env file in the working directory is honored when present.
func NewConfig(defaultListen string) (*Config, error) {
	_ = godotenv.Load()

	var db Database
	var http HTTP
	var token Token
	var cors Cors
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", defaultListen, "HTTP server endpoint")
	flag.DurationVar(&token.AccessDuration, "access-ttl", 30*time.Minute, "Access token lifetime")
	flag.DurationVar(&token.RefreshDuration, "refresh-ttl", 720*time.Hour, "Refresh token lifetime")
	flag.StringVar(&cors.FrontendURL, "f", `http://localhost:3000`, "Frontend origin for CORS")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&token)
	if err != nil {
		return nil, fmt.Errorf("error parsing token config: %w", err)
	}
	err = env.Parse(&cors)
	if err != nil {
		return nil, fmt.Errorf("error parsing cors config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Token:    &token,
		Cors:     &cors,
		App:      &app,
	}

	return &config, nil
}
