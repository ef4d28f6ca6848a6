// Package config manages user-level settings stored at ~/.venvlink/config.yaml.
// Settings are layered with viper: command-line flags override VENVLINK_*
// environment variables, which override the config file, which overrides the
// built-in defaults. The config file is validated against an embedded JSON
// schema before it is read.
package config
