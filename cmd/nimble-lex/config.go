package main

import (
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	errors "gopkg.in/src-d/go-errors.v1"
	yaml "gopkg.in/yaml.v2"

	"github.com/Ctl-F/nimble/internal/similartext"
)

const (
	// environment variable names
	envFormat   = "NIMBLE_LEX_FORMAT"
	envComments = "NIMBLE_LEX_COMMENTS"
	envLogLevel = "NIMBLE_LEX_LOG_LEVEL"
	envHistory  = "NIMBLE_LEX_HISTORY"
	envTrace    = "NIMBLE_LEX_TRACE"
)

var (
	errEnvVar        = errors.NewKind("cannot parse env var %s=%s")
	errConfigFile    = errors.NewKind("cannot read config file %s")
	errUnknownFormat = errors.NewKind("unknown output format %s")
	errLogLevel      = errors.NewKind("unknown log level %s")
)

// Config controls one invocation. Values are layered: defaults, then the
// optional yaml file, then the environment; flags land on top in main.
type Config struct {
	// Format selects the token writer, one of the keys of formats.
	Format string `yaml:"format"`
	// Comments keeps comment tokens in the output.
	Comments bool `yaml:"comments"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// History is the path of a bolt database recording runs; empty
	// disables recording.
	History string `yaml:"history"`
	// Trace records spans for every scan, for -debug inspection.
	Trace bool `yaml:"trace"`
}

func defaultConfig() Config {
	return Config{
		Format:   "text",
		Comments: true,
		LogLevel: "info",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return cfg, errConfigFile.Wrap(err, path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errConfigFile.Wrap(err, path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if e := os.Getenv(envFormat); e != "" {
		cfg.Format = e
	}
	if e := os.Getenv(envComments); e != "" {
		value, err := cast.ToBoolE(e)
		if err != nil {
			return errEnvVar.Wrap(err, envComments, e)
		}
		cfg.Comments = value
	}
	if e := os.Getenv(envLogLevel); e != "" {
		cfg.LogLevel = e
	}
	if e := os.Getenv(envHistory); e != "" {
		cfg.History = e
	}
	if e := os.Getenv(envTrace); e != "" {
		value, err := cast.ToBoolE(e)
		if err != nil {
			return errEnvVar.Wrap(err, envTrace, e)
		}
		cfg.Trace = value
	}
	return nil
}

func (c Config) validate() error {
	if _, ok := formats[c.Format]; !ok {
		return errUnknownFormat.New(c.Format + similartext.FindFromMap(formats, c.Format))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errLogLevel.Wrap(err, c.LogLevel)
	}
	return nil
}
