// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optionparser - Small option parser with short and long forms and a
generated help message.

It operates on any given slice of strings and returns the tokens that were
not used by a registered option.

# Usage

	opt := optionparser.New("Usage: grep [options] <pattern>", "Report bugs upstream.")

	// Options are identified by name, either form can be left empty.
	err := opt.Register("-c", "--count", "Print a count of matching lines.", "count")
	err = opt.Register("-C", "--context", "Print lines of context.", "context")

	positional := opt.Parse(os.Args[1:])

	if opt.Enabled("count") {
		// values captured with -c123 or --count=123
		values, _ := opt.Values("count")
	}

	fmt.Fprint(os.Stderr, opt.Help())

# Features

* Short forms with the value attached: `-c123`.

* Long forms with the value after '=': `--count=123`.

* Bare flags: `-c` or `--count` enable the option without a value.

* Repeated options accumulate their values in order.

* Tokens that don't match any option are returned as positional arguments, in order.
That includes flag shaped tokens like `-x` when no option defines them.

* The next token is never consumed as a value: `-c 123` enables count and leaves `123` as positional.

* Optionally, `--` stops option parsing. See SetStopOnDoubleDash.

# Errors

Register returns an error wrapping ErrInvalidDefinition for empty or
duplicate names, malformed forms, forms already in use and options without
any form.
Values returns an error wrapping ErrUnknownOption for names that were never
registered.
The parser never panics on user input.
*/
package optionparser

import (
	"io"
	"log"

	"github.com/DavidGamba/go-optionparser/internal/option"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Parser - main object.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	header string
	footer string

	// Registered options in registration order.
	options []*option.Option
	// Lookup tables, both point into options.
	byName map[string]*option.Option
	byForm map[string]*option.Option

	// Result of the last Parse call.
	positional []string

	stopOnDoubleDash bool
	helpWidth        int
}

// New returns an empty Parser.
// The header and footer are printed verbatim above and below the option list
// by Help.
//
//	opt := optionparser.New("Usage: myscript [options]", "")
func New(header, footer string) *Parser {
	return &Parser{
		header:     header,
		footer:     footer,
		byName:     make(map[string]*option.Option),
		byForm:     make(map[string]*option.Option),
		positional: []string{},
	}
}

// SetStopOnDoubleDash - When enabled, a bare `--` token ends option parsing.
// The `--` itself is dropped and every token after it is positional.
// Disabled by default, in which case `--` is just another positional token.
func (p *Parser) SetStopOnDoubleDash(b bool) {
	p.stopOnDoubleDash = b
}

// SetHelpWidth - Wrap option descriptions in Help so lines fit in width
// columns where possible. 0, the default, disables wrapping.
func (p *Parser) SetHelpWidth(width int) {
	if width < 0 {
		width = 0
	}
	p.helpWidth = width
}
