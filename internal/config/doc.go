// Package config defines the application configuration structure and
// loading. Configuration is read once at startup from an optional
// config.yaml plus KTIVA_-prefixed environment variables, validated,
// and passed by reference everywhere; it is never mutated afterwards.
package config
