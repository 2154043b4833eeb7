// Package config holds the extraction configuration: defaults, the
// flags-first Config struct, validation, and YAML config file loading
// with per-dump overrides.
package config
