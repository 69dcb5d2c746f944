// Package config defines the root CLI surface of the krakenmon binary.
package config

import (
	"krakenmon/internal/cmd"
)

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"KRAKENMON_LOG_LEVEL"`
	File    string `help:"Write logs to this file in addition to the console" type:"path" env:"KRAKENMON_LOG_FILE"`
	RawFile string `help:"Write raw status report hex dumps to this file" type:"path" env:"KRAKENMON_LOG_RAW_FILE"`
}

// CLI is the kong root. Values come from flags, environment variables and
// the layered JSON/YAML/TOML config candidates, in that priority order.
type CLI struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Config string    `help:"Path to a configuration file" type:"path"`

	Server cmd.Server        `cmd:"" help:"Run the monitoring daemon"`
	Watch  cmd.Watch         `cmd:"" help:"Live terminal view of the sensor channels"`
	Read   cmd.Read          `cmd:"" help:"Print one snapshot of every channel and exit"`
	List   cmd.List          `cmd:"" help:"List hidraw devices and matching drivers"`
	Cfg    cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
