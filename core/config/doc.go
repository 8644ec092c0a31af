// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/egyptid/core/config"
//
//	type CLIConfig struct {
//		Lang       string `env:"EGYPTID_LANG" envDefault:"en"`
//		LogLevel   string `env:"EGYPTID_LOG_LEVEL" envDefault:"info"`
//		CardLength int    `env:"EGYPTID_TEST_CARD_LENGTH" envDefault:"16"`
//	}
//
//	func main() {
//		var cfg CLIConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 CLIConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 CLIConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type LogConfig struct {
//		Level string `env:"EGYPTID_LOG_LEVEL" envDefault:"info"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&CLIConfig{})
//	config.MustLoad(&LogConfig{})
//
// Reset clears the cache so tests can load again after t.Setenv.
package config
