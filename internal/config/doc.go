// Package config manages user-level settings stored at ~/.solforge/config.yaml.
// Values can also come from SOLFORGE_* environment variables; command-line
// flags take precedence over both.
package config
