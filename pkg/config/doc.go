// Package config loads typed configuration from environment variables.
//
// Every package that needs settings declares a Config struct with
// github.com/caarlos0/env/v11 tags; the gateway binary loads each of them with
// Load. A local .env file is read first through github.com/joho/godotenv,
// without overriding variables the process already has.
//
// Each struct type is parsed at most once per process. Parsing errors are
// cached alongside successful values, so a misconfigured process fails the
// same way on every call.
//
//	var cfg tenant.Config
//	config.MustLoad(&cfg)
package config
