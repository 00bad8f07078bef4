// Package config loads sigmesh-cli configuration.
//
// It uses Koanf for flexible loading from multiple sources with
// priority: Env > File > Default. CLI flags override at the command
// layer on top of the loaded config.
package config
