// Package config is used to configure the application settings.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"strconv"
)

// Config - redirect service configuration structure.
type Config struct {
	// Addr: listen address derived from Port (e.g., ":8000").
	Addr string `json:"server_address"`
	// TargetFile: path to the JSON document naming the redirect target.
	TargetFile string `json:"target_file"`
	// FallbackURL: where /x sends clients when the target cannot be resolved.
	FallbackURL string `json:"fallback_url"`
	// ConfigPath: path to configuration file.
	ConfigPath string
	// Port: listening port, selected by the PORT environment variable.
	Port int `json:"port"`
}

var cfgDefault = Config{
	Addr:        ":8000",
	Port:        8000,
	TargetFile:  "redirect.json",
	FallbackURL: "https://example.com/",
	ConfigPath:  "",
}

// NewConfig creates and returns a new instance of the Config structure with predefined values.
func NewConfig() *Config {
	cfg := cfgDefault
	return &cfg
}

// ErrReadConfig - error reading json config.
var ErrReadConfig = errors.New("reading json config")

// ErrParseConfig - error parsing json config.
var ErrParseConfig = errors.New("parse json config")

// Init initializes the application configuration using environment variables and command-line flags.
// An unparsable PORT value keeps the default port.
func Init(c *Config) error {
	if val, exist := os.LookupEnv("PORT"); exist {
		if port, err := strconv.Atoi(val); err == nil {
			c.Port = port
		}
	}
	if val, exist := os.LookupEnv("TARGET_FILE"); exist {
		c.TargetFile = val
	}
	if val, exist := os.LookupEnv("FALLBACK_URL"); exist {
		c.FallbackURL = val
	}

	var flagCfg Config
	flag.IntVar(&flagCfg.Port, "p", 0, "listening port")
	flag.StringVar(&flagCfg.TargetFile, "t", "", "path to the redirect target file (json)")
	flag.StringVar(&flagCfg.FallbackURL, "f", "", "fallback URL used when the target cannot be resolved")
	flag.StringVar(&flagCfg.ConfigPath, "c", "", "path to config file (json)")

	flag.Parse()

	if flagCfg.ConfigPath == "" {
		if val, exist := os.LookupEnv("CONFIG"); exist {
			flagCfg.ConfigPath = val
		}
	}
	if flagCfg.ConfigPath != "" {
		file, err := os.ReadFile(flagCfg.ConfigPath)
		if err != nil {
			return ErrReadConfig
		}
		if err := json.Unmarshal(file, c); err != nil {
			return ErrParseConfig
		}
	}

	// override
	if flagCfg.Port != 0 {
		c.Port = flagCfg.Port
	}
	if flagCfg.TargetFile != "" {
		c.TargetFile = flagCfg.TargetFile
	}
	if flagCfg.FallbackURL != "" {
		c.FallbackURL = flagCfg.FallbackURL
	}

	c.Addr = ":" + strconv.Itoa(c.Port)

	return nil
}
