// Package config loads and validates the mihoro configuration file
// (~/.config/mihoro.toml by default). Values can be overridden through
// MIHORO_-prefixed environment variables, and the parsed document is checked
// against an embedded JSON schema before use.
package config
