/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/dburkart/tinyc/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve syntax checks over HTTP",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		policy, err := lang.ParsePolicy(viper.GetString("lang.redeclaration"))
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid redeclaration policy")
		}

		// Initialize check server
		srv := server.New(
			logger,
			policy,
			viper.GetInt("server.port"),
			viper.GetInt("server.prom-port"),
		)

		// Serve the check endpoints
		go func() {
			if err := srv.ServeChecks(); err != nil {
				logger.Fatal().Err(err).Send()
			}
		}()

		// Serve the metrics endpoint
		if err := srv.ServeMetrics(); err != nil {
			logger.Fatal().Err(err).Send()
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Server port for check requests")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")

	// Bind flags to viper
	viper.BindPFlag("server.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("server.prom-port", Command.Flags().Lookup("prom-port"))
}
