// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"github.com/DavidGamba/go-optionparser/internal/option"
	"github.com/DavidGamba/go-optionparser/internal/sliceiterator"
	"github.com/DavidGamba/go-optionparser/text"
)

// Parse - Scans args once, left to right, and saves the options found.
// Returns the positional arguments, the tokens that didn't match any option,
// in their original order.
//
// Each call starts from a clean state: options and positional arguments
// from a previous call are discarded.
//
// For every token:
//
//   - `-c` or `--count`: the option is enabled without a value.
//   - `-c123`: the option is enabled and `123` is saved.
//   - `--count=456`: the option is enabled and `456` is saved. `--count=` saves an empty value.
//   - Anything else is positional.
//
// An exact form match takes precedence over an attached value match.
// Among attached value matches, the first registered option wins.
// The first element of args is not special, if os.Args is passed as is,
// the program name is returned as a positional argument.
func (p *Parser) Parse(args []string) []string {
	for _, opt := range p.options {
		opt.Reset()
	}
	p.positional = []string{}

	iterator := sliceiterator.New(args)
	for iterator.Next() {
		token := iterator.Value()

		if p.stopOnDoubleDash && token == "--" {
			rest := iterator.Rest()
			Logger.Printf("option parsing terminated, remaining: %q", rest)
			p.positional = append(p.positional, rest...)
			break
		}

		if opt, ok := p.byForm[token]; ok {
			opt.Save()
			continue
		}

		if opt, value, ok := p.matchAttached(token); ok {
			opt.Save(value)
			continue
		}

		if pair, ok := isOption(token); ok {
			Logger.Printf(text.MessageUnknownFlag, pair.Option)
		}
		p.positional = append(p.positional, token)
	}
	return p.Positional()
}

// matchAttached - Returns the first registered option with a value attached to token.
func (p *Parser) matchAttached(token string) (*option.Option, string, bool) {
	for _, opt := range p.options {
		if value, ok := opt.MatchAttached(token); ok {
			return opt, value, true
		}
	}
	return nil, "", false
}
