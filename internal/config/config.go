package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort            string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string `env:"DATABASE_URL,required"`
	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`
	// Si los perfiles ya admirados reaparecen en el discovery.
	DiscoverExcludeDecided bool `env:"DISCOVER_EXCLUDE_DECIDED" envDefault:"false"`
	// Limite de admires por usuario por ventana; 0 desactiva el limite.
	AdmireRateMax           int `env:"ADMIRE_RATE_MAX" envDefault:"0"`
	AdmireRateWindowMinutes int `env:"ADMIRE_RATE_WINDOW_MINUTES" envDefault:"1"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
