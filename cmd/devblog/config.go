package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/navidjalilian/devblog"
)

// envKeys are the settings that may come from DEVBLOG_* variables alone.
var envKeys = []string{
	"url",
	"contentDir",
	"publicDir",
	"outputDir",
	"addr",
	"collectionTTL",
	"maxImageWidth",
	"markdown.theme",
	"markdown.wrap",
	"i18n.defaultLocale",
	"i18n.prefixDefaultLocale",
}

// loadConfig reads .env, the config file, and DEVBLOG_* variables, in
// increasing order of precedence over the defaults.
func loadConfig(log zerolog.Logger) (devblog.SiteConfig, error) {
	var cfg devblog.SiteConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("devblog")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DEVBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return cfg, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		log.Debug().Msg("no config file found, using defaults and environment")
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("using config file")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// newApp builds the App from configuration for a command.
func newApp(opts ...devblog.Option) (*devblog.App, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(log)
	if err != nil {
		return nil, err
	}
	return devblog.New(cfg, devblog.ViewFuncs{}, append([]devblog.Option{devblog.WithLogger(log)}, opts...)...), nil
}
