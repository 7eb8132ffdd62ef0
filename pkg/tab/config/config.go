// Package config is the configuration of the tab command line tool.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
)

// DefaultFile is the config file read when no other file is given.
const DefaultFile = "tab.yml"

// EnvPrefix prefixes the environment variables overriding config keys,
// e.g. TAB_BROADCAST_CONCURRENCY.
const EnvPrefix = "TAB"

// DefaultConfigBytes is the documented default config file.
//
//go:embed tab.yml
var DefaultConfigBytes []byte

// Config is the tab configuration.
type Config struct {
	// Version is the client version commands use when none is given.
	Version   string    `yaml:"version" json:"version"`
	Broadcast Broadcast `yaml:"broadcast" json:"broadcast"`
	// Debug enables development logging.
	Debug bool `yaml:"debug" json:"debug"`
	// Verbosity is the logr verbosity, 1 logs skipped and discarded packets.
	Verbosity int `yaml:"verbosity" json:"verbosity"`
}

// Broadcast configures sending a packet to many connections.
type Broadcast struct {
	// Concurrency is the number of connections written to at once, 0 for no limit.
	Concurrency int `yaml:"concurrency" json:"concurrency"`
}

// DefaultConfig is the config used for unset keys.
var DefaultConfig = Config{
	Version:   version.MaximumVersion.FirstName(),
	Broadcast: Broadcast{Concurrency: 16},
}

// SetDefault is implemented by *viper.Viper.
type SetDefault interface {
	SetDefault(key string, value any)
}

// SetDefaults sets Config defaults to use with Viper.
func SetDefaults(i SetDefault) {
	i.SetDefault("version", DefaultConfig.Version)
	i.SetDefault("broadcast.concurrency", DefaultConfig.Broadcast.Concurrency)
	i.SetDefault("debug", DefaultConfig.Debug)
	i.SetDefault("verbosity", DefaultConfig.Verbosity)
}

// Load reads the config file and environment variables into a new Config.
// An empty file name reads DefaultFile if it exists.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	optional := file == ""
	if optional {
		file = DefaultFile
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %q: %w", file, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// Validate returns warnings and errors of the config.
func (c *Config) Validate() (warns []error, errs []error) {
	e := func(m string, args ...any) { errs = append(errs, fmt.Errorf(m, args...)) }
	w := func(m string, args ...any) { warns = append(warns, fmt.Errorf(m, args...)) }
	if c == nil {
		e("config must not be nil")
		return
	}

	if _, err := version.Parse(c.Version); err != nil {
		e("Invalid version: %v", err)
	}
	switch {
	case c.Broadcast.Concurrency < 0:
		e("Broadcast concurrency must not be negative, got %d", c.Broadcast.Concurrency)
	case c.Broadcast.Concurrency == 0:
		w("Broadcast concurrency is 0, connections are written to without limit")
	}
	if c.Verbosity < 0 {
		e("Verbosity must not be negative, got %d", c.Verbosity)
	} else if c.Verbosity > 1 {
		w("Verbosity %d is higher than the highest used level 1", c.Verbosity)
	}
	return
}

// Protocol returns the protocol of the configured version.
func (c *Config) Protocol() (proto.Protocol, error) {
	v, err := version.Parse(c.Version)
	if err != nil {
		return 0, err
	}
	return v.Protocol, nil
}
