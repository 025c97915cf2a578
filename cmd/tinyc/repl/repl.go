/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/dburkart/tinyc/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive terminal for checking programs line by line",

	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("tinyc.output", cmd.Flags().Lookup("output"))
	},

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)
		output := viper.GetString("tinyc.output")
		if len(filterStringSlice(repl.Formats, output)) != 1 {
			log.Fatal().Msg("unsupported output format")
		}

		policy, err := lang.ParsePolicy(viper.GetString("lang.redeclaration"))
		if err != nil {
			log.Fatal().Err(err).Msg("invalid redeclaration policy")
		}

		readlinePrompt(repl.NewSession(policy, log), output, log)
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of symbol and token tables [csv, json, text]")
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func policyNames(line string) []string {
	return []string{lang.InsertOrUpdate.String(), lang.RejectRedeclaration.String()}
}

func readlinePrompt(s *repl.Session, output string, log zerolog.Logger) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem(":check"),
		readline.PcItem(":tokens"),
		readline.PcItem(":symbols"),
		readline.PcItem(":reset"),
		readline.PcItem(":policy", readline.PcItemDynamic(policyNames)),
		readline.PcItem(":help"),
		readline.PcItem(":quit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer
	writer := repl.NewOutputWriter(os.Stdout, output)

	// Handle input
	for {
		if s.Pending() {
			rl.SetPrompt("\033[33m.\033[0m ")
		} else {
			rl.SetPrompt("\033[31m>\033[0m ")
		}

		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		cmd, err := repl.ParseREPLCommand([]byte(ln.Line))
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		if cmd.Name == repl.CommandQuit {
			break
		}
		dispatch(s, cmd, writer, os.Stdout, completer, log)
	}
	rl.Clean()

	fmt.Println(s.Stats())
}

func dispatch(s *repl.Session, cmd repl.Command, writer repl.OutputWriter, out io.Writer, completer *readline.PrefixCompleter, log zerolog.Logger) {
	switch cmd.Name {
	case repl.CommandSource:
		s.Add(cmd.Args)
	case repl.CommandCheck:
		if !s.Pending() {
			return
		}
		input, _, err := s.Check()
		if err != nil {
			fmt.Fprint(out, lang.FormatError(input, err))
			return
		}
		fmt.Fprintln(out, "ok")
	case repl.CommandTokens:
		input, tokens, err := s.Tokens()
		if err != nil {
			fmt.Fprint(out, lang.FormatError(input, err))
			return
		}
		if err := writer.Write(tokens); err != nil {
			log.Error().Err(err).Msg("unable to write tokens")
		}
	case repl.CommandSymbols:
		if err := writer.Write(s.Symbols); err != nil {
			log.Error().Err(err).Msg("unable to write symbols")
		}
	case repl.CommandReset:
		s.Reset()
	case repl.CommandPolicy:
		s.SetPolicy(cmd.Policy)
		fmt.Fprintf(out, "redeclaration policy is now %s\n", cmd.Policy)
	case repl.CommandHelp:
		fmt.Fprintln(out, "Enter program text line by line. A blank line checks the buffer.")
		fmt.Fprintln(out, "usage:")
		fmt.Fprintln(out, completer.Tree("    "))
	}
}
