/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

var (
	// CommandSource appends a line of program text to the buffer
	CommandSource = "SOURCE"
	// CommandCheck checks the buffered program
	CommandCheck = "CHECK"
	// CommandTokens shows the tokens of the buffered program
	CommandTokens = "TOKENS"
	// CommandSymbols shows the session symbol table
	CommandSymbols = "SYMBOLS"
	// CommandReset clears the buffer and the symbol table
	CommandReset = "RESET"
	// CommandPolicy sets the redeclaration policy of the session
	CommandPolicy = "POLICY"
	// CommandHelp
	CommandHelp = "HELP"
	// CommandQuit
	CommandQuit = "QUIT"
)
