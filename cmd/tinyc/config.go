/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tinyc

import (
	"io"
	"os"
	"time"

	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func initConfig(configFile string) {
	log := viper.Get("logger").(zerolog.Logger)

	// config Read
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath("/etc/tinyc")
	viper.AddConfigPath("$HOME/.tinyc")
	viper.AddConfigPath(".")

	if configFile != "" {
		viper.SetConfigFile(configFile)
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("No config file found, using defaults as a base")
	} else if err != nil {
		log.Error().Err(err).Msg("Error loading config file")
	}

	viper.SetDefault("lang.redeclaration", lang.InsertOrUpdate.String())
	viper.SetDefault("tinyc.output", "text")
	viper.SetDefault("server.port", 8001)
	viper.SetDefault("server.prom-port", 2112)
}

// initLogLevel maps the -v count onto zerolog's global level
func initLogLevel() {
	switch level := viper.GetInt("tinyc.verbose"); {
	case level >= 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case level == 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initLogging() {
	var writer io.Writer

	writer = os.Stderr
	if viper.GetBool("tinyc.local") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	viper.Set("logger", logger)
}

// configKeys are the settings tinyc reads, traced at startup
var configKeys = []string{
	"tinyc.verbose",
	"tinyc.local",
	"tinyc.output",
	"lang.redeclaration",
	"server.port",
	"server.prom-port",
}

func traceConfig() {
	log := viper.Get("logger").(zerolog.Logger)

	e := log.Trace().Str("file", viper.ConfigFileUsed())
	for _, k := range configKeys {
		e = e.Interface(k, viper.Get(k))
	}
	e.Msg("configuration")
}
