// Copyright 2017 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/andreimuntean/Quickselect/pkg/util/logutil"
	"github.com/pingcap/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

const (
	flagConfig        = "config"
	flagLogLevel      = "log-level"
	flagLogLevelShort = "L"
	flagLogFile       = "log-file"
	flagLogFormat     = "log-format"
	flagSeed          = "seed"
	flagRank          = "rank"
	flagRankShort     = "k"
	flagColor         = "color"
)

// ErrInvalidConfig is returned when the configuration cannot be used.
var ErrInvalidConfig = errors.Normalize("invalid config: %s", errors.RFCCodeText("KthSelect:Config:ErrInvalidConfig"))

// Config contains configuration options.
type Config struct {
	Log    Log    `toml:"log" json:"log"`
	Select Select `toml:"select" json:"select"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json, text, or console.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
	// File log config.
	File string `toml:"file" json:"file"`
}

// Select is the selection section of config.
type Select struct {
	// Seed of the shuffling random source, 0 means seeding from the clock.
	Seed int64 `toml:"seed" json:"seed"`
	// Rank to select. 0 means asking for it interactively.
	Rank int `toml:"rank" json:"rank"`
	// Color enables colored result output.
	Color bool `toml:"color" json:"color"`
}

var defaultConf = Config{
	Log: Log{
		Level:  logutil.DefaultLogLevel,
		Format: logutil.DefaultLogFormat,
	},
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// Load loads config options from a toml file.
func (c *Config) Load(confFile string) error {
	metaData, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Annotatef(err, "load config file %s", confFile)
	}
	if undecoded := metaData.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, item := range undecoded {
			keys = append(keys, item.String())
		}
		return ErrInvalidConfig.GenWithStackByArgs("unknown keys " + strings.Join(keys, ", "))
	}
	return nil
}

// Valid checks if this config is valid.
func (c *Config) Valid() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return ErrInvalidConfig.GenWithStackByArgs("log level " + c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "console":
	default:
		return ErrInvalidConfig.GenWithStackByArgs("log format " + c.Log.Format)
	}
	if c.Select.Rank < 0 {
		return ErrInvalidConfig.GenWithStackByArgs("rank must not be negative")
	}
	return nil
}

// ToLogConfig converts *Log to *logutil.LogConfig.
func (l *Log) ToLogConfig() *logutil.LogConfig {
	return &logutil.LogConfig{
		Level:            l.Level,
		Format:           l.Format,
		DisableTimestamp: l.DisableTimestamp,
		File:             l.File,
	}
}

// DefineFlags defines flags of the configuration.
func DefineFlags(flags *pflag.FlagSet) {
	flags.String(flagConfig, "", "Path of the TOML configuration file")
	flags.StringP(flagLogLevel, flagLogLevelShort, defaultConf.Log.Level, "Log level: debug, info, warn, error")
	flags.String(flagLogFile, defaultConf.Log.File, "Log file path, leave empty to write logs to stderr")
	flags.String(flagLogFormat, defaultConf.Log.Format, "Log format: text, json or console")
	flags.Int64(flagSeed, defaultConf.Select.Seed, "Seed of the shuffling random source, 0 to seed from the clock")
	flags.IntP(flagRank, flagRankShort, defaultConf.Select.Rank, "Rank to select, 0 to ask for it interactively")
	flags.Bool(flagColor, defaultConf.Select.Color, "Colorize the result")
}

// ParseFromFlags loads the file named by --config, if any, and then
// overrides it with the flags that were set explicitly.
func (c *Config) ParseFromFlags(flags *pflag.FlagSet) error {
	var err error
	if flags.Changed(flagConfig) {
		confFile, err := flags.GetString(flagConfig)
		if err != nil {
			return errors.Trace(err)
		}
		if err := c.Load(confFile); err != nil {
			return err
		}
	}
	if flags.Changed(flagLogLevel) {
		if c.Log.Level, err = flags.GetString(flagLogLevel); err != nil {
			return errors.Trace(err)
		}
	}
	if flags.Changed(flagLogFile) {
		if c.Log.File, err = flags.GetString(flagLogFile); err != nil {
			return errors.Trace(err)
		}
	}
	if flags.Changed(flagLogFormat) {
		if c.Log.Format, err = flags.GetString(flagLogFormat); err != nil {
			return errors.Trace(err)
		}
	}
	if flags.Changed(flagSeed) {
		if c.Select.Seed, err = flags.GetInt64(flagSeed); err != nil {
			return errors.Trace(err)
		}
	}
	if flags.Changed(flagRank) {
		if c.Select.Rank, err = flags.GetInt(flagRank); err != nil {
			return errors.Trace(err)
		}
	}
	if flags.Changed(flagColor) {
		if c.Select.Color, err = flags.GetBool(flagColor); err != nil {
			return errors.Trace(err)
		}
	}
	return c.Valid()
}
