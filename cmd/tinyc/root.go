/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tinyc

import (
	"fmt"
	"os"

	"github.com/dburkart/tinyc/cmd/tinyc/check"
	"github.com/dburkart/tinyc/cmd/tinyc/repl"
	"github.com/dburkart/tinyc/cmd/tinyc/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "tinyc",
		Short: "tinyc checks the syntax of tiny imperative programs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().String("redeclaration", "insert", "What to do when a name is declared twice [insert, reject]")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the tinyc config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("tinyc.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("tinyc.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("lang.redeclaration", rootCmd.PersistentFlags().Lookup("redeclaration"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("tinyc version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	check.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	server.Command.Version = rootCmd.Version
	rootCmd.AddCommand(check.Command)
	rootCmd.AddCommand(repl.Command)
	rootCmd.AddCommand(server.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
