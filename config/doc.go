// Package config loads motifnull run settings with viper, validates them with
// go-playground/validator and builds the zerolog logger used by the CLI.
//
// Precedence, lowest first: built-in defaults, the YAML/TOML/JSON file given
// to Load, MOTIFNULL_* environment variables, then any flags bound to the
// viper instance by the caller.
package config
