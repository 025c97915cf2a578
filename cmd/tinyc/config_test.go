/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tinyc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func TestInitConfigFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("logger", zerolog.Nop())

	path := filepath.Join(t.TempDir(), "tinyc.toml")
	config := "[lang]\nredeclaration = \"reject\"\n\n[server]\nport = 9000\n"
	if err := os.WriteFile(path, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	initConfig(path)

	if got := viper.GetString("lang.redeclaration"); got != "reject" {
		t.Errorf("wanted reject from the config file, got %s", got)
	}
	if got := viper.GetInt("server.port"); got != 9000 {
		t.Errorf("wanted port 9000 from the config file, got %d", got)
	}
	if got := viper.GetInt("server.prom-port"); got != 2112 {
		t.Errorf("wanted default metrics port 2112, got %d", got)
	}
	if got := viper.GetString("tinyc.output"); got != "text" {
		t.Errorf("wanted default output text, got %s", got)
	}
}

func TestInitLogLevel(t *testing.T) {
	defer viper.Reset()
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	tests := []struct {
		verbose int
		level   zerolog.Level
	}{
		{0, zerolog.InfoLevel},
		{1, zerolog.DebugLevel},
		{2, zerolog.TraceLevel},
		{5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		viper.Set("tinyc.verbose", tt.verbose)
		initLogLevel()

		if zerolog.GlobalLevel() != tt.level {
			t.Errorf("-v count %d: wanted %s, got %s", tt.verbose, tt.level, zerolog.GlobalLevel())
		}
	}
}
