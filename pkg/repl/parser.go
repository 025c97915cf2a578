/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dburkart/tinyc/pkg/lang"
)

type Command struct {
	Name string
	Args string

	// Policy is set for CommandPolicy
	Policy lang.Policy
}

// ParseREPLCommand parses input from the command line. Lines beginning with
// ':' are session commands, a blank line checks the buffer, and anything
// else is program text.
//
// This function assumes there is no '\n'
func ParseREPLCommand(b []byte) (Command, error) {
	line := bytes.TrimSpace(b)

	if len(line) == 0 {
		return Command{Name: CommandCheck}, nil
	}

	if line[0] != ':' {
		return Command{Name: CommandSource, Args: string(b)}, nil
	}

	// all commands have a space after them, if not then they are command only
	// like :quit
	var cmd, args []byte
	ind := bytes.IndexByte(line, ' ')
	if ind == -1 {
		cmd = line[1:]
	} else {
		cmd = line[1:ind]
		args = bytes.TrimSpace(line[ind+1:])
	}

	ret := Command{Args: string(args)}

	switch strings.ToUpper(string(cmd)) {
	case CommandCheck:
		ret.Name = CommandCheck
	case CommandTokens:
		ret.Name = CommandTokens
	case CommandSymbols:
		ret.Name = CommandSymbols
	case CommandReset:
		ret.Name = CommandReset
	case CommandHelp:
		ret.Name = CommandHelp
	case CommandQuit, "EXIT", "Q":
		ret.Name = CommandQuit
	case CommandPolicy:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("policy expects one of insert, reject")
		}
		policy, err := lang.ParsePolicy(string(args))
		if err != nil {
			return Command{}, err
		}
		ret.Name = CommandPolicy
		ret.Policy = policy
	default:
		return Command{}, fmt.Errorf("unknown command :%s", cmd)
	}

	return ret, nil
}
