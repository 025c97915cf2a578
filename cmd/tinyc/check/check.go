/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package check

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/dburkart/tinyc/pkg/repl"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "check [flags] FILE...",
	Short: "Check the syntax of one or more programs",
	Long:  "Check the syntax of one or more programs. A FILE of - reads the program from stdin.",
	Args:  cobra.MinimumNArgs(1),

	PreRun: func(cmd *cobra.Command, args []string) {
		// -o is shared with the repl command, bind whichever one is running
		viper.BindPFlag("tinyc.output", cmd.Flags().Lookup("output"))
	},

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("tinyc.output")
		if !supported(output) {
			log.Fatal().Str("output", output).Msg("unsupported output format")
		}

		policy, err := lang.ParsePolicy(viper.GetString("lang.redeclaration"))
		if err != nil {
			log.Fatal().Err(err).Msg("invalid redeclaration policy")
		}

		c := checker{
			log:     log,
			policy:  policy,
			out:     cmd.OutOrStdout(),
			writer:  repl.NewOutputWriter(cmd.OutOrStdout(), output),
			symbols: viper.GetBool("check.symbols"),
			tokens:  viper.GetBool("check.tokens"),
		}

		start := time.Now()
		for _, name := range args {
			c.run(name)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s checked (%d failed), %s read in %s\n",
			english.Plural(c.checked, "program", "programs"),
			c.failed,
			humanize.Bytes(c.bytes),
			time.Since(start).Round(time.Microsecond),
		)

		if c.failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	Command.Flags().StringP("output", "o", "text", "Output format of symbol and token tables [csv, json, text]")
	Command.Flags().Bool("symbols", false, "Print the symbol table of each program that passes")
	Command.Flags().Bool("tokens", false, "Print the tokens of each program")

	viper.BindPFlag("check.symbols", Command.Flags().Lookup("symbols"))
	viper.BindPFlag("check.tokens", Command.Flags().Lookup("tokens"))
}

type checker struct {
	log    zerolog.Logger
	policy lang.Policy
	out    io.Writer
	writer repl.OutputWriter

	symbols bool
	tokens  bool

	checked int
	failed  int
	bytes   uint64
}

func (c *checker) run(name string) {
	input, err := readProgram(name)
	if err != nil {
		c.log.Error().Err(err).Send()
		c.failed++
		return
	}

	c.checked++
	c.bytes += uint64(len(input))

	if c.tokens {
		if tokens, err := lang.Tokenize(input); err == nil {
			if err := c.writer.Write(repl.TokenTable(tokens)); err != nil {
				c.log.Error().Err(err).Msg("unable to write tokens")
			}
		}
	}

	result, err := lang.Check(input, lang.WithPolicy(c.policy), lang.WithLogger(c.log))
	if err != nil {
		c.failed++
		c.log.Debug().Str("file", name).Err(err).Msg("check failed")
		fmt.Fprintf(c.out, "%s: %s\n", name, err)
		fmt.Fprint(c.out, lang.FormatError(input, err))
		return
	}

	fmt.Fprintf(c.out, "%s: ok\n", name)
	if c.symbols {
		if err := c.writer.Write(result.Symbols); err != nil {
			c.log.Error().Err(err).Msg("unable to write symbols")
		}
	}
}

func readProgram(name string) (string, error) {
	var (
		b   []byte
		err error
	)

	if name == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", name)
	}
	return string(b), nil
}

func supported(output string) bool {
	for _, f := range repl.Formats {
		if f == output {
			return true
		}
	}
	return false
}
