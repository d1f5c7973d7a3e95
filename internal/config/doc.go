// Package config loads the tucker-sync server configuration from
// environment variables, command-line flags and an optional JSON file,
// merges the three sources and validates the result.
//
// Precedence, highest first: environment, flags, JSON file. Object classes
// (names, shareable flags, payload schemas) can only be configured through
// the JSON file.
package config
