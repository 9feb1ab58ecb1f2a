// Package config charge la configuration depuis l'environnement.
// Précédence : variable d'environnement explicite > fichier .env (chargé par
// main) > valeur par défaut.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"nexa.db"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	StatePath   string `env:"STATE_PATH" envDefault:"state.json"`
	Migrations  bool   `env:"MIGRATIONS" envDefault:"false"`
	DBDebug     bool   `env:"DB_DEBUG" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("lecture de la configuration: %w", err)
	}
	return cfg, nil
}
