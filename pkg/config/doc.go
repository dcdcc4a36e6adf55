// Package config loads typed configuration from environment variables.
//
// Values come from the process environment, optionally seeded from .env files
// through github.com/joho/godotenv, and are decoded into structs with
// github.com/caarlos0/env/v11 field tags:
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Each configuration type is parsed once per process; later calls return the
// cached copy. ResetCache clears it for tests.
package config
