// Package config handles the optional lazy-scripts configuration file.
// It is a TOML document at $XDG_CONFIG_HOME/lazy-scripts/config.toml;
// environment variables override whatever it sets.
package config
