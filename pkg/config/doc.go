// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the life of the process.
//
// Every configurable package in this module exposes a Config struct with env
// tags and a NewFromConfig constructor:
//
//	var vcfg validator.Config
//	config.MustLoad(&vcfg)
//	v := validator.NewFromConfig(vcfg, rules)
//
// Use ResetCache or ForceReloadConfig in tests after changing the environment.
package config
