// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: option
// 3: =arg
var isOptionRegex = regexp.MustCompile(`^(--?)([^=-][^=]*)(.*?)$`)

type optionPair struct {
	Option string
	Arg    string
	HasArg bool
}

/*
isOption - Check if the given string looks like an option (starts with - or --).
Return the option without the starting dashes and its argument if the string contained one.

Only used to report flag shaped tokens that didn't match any registered option.
The lone dash `-` and the terminator `--` are not options.
*/
func isOption(s string) (optionPair, bool) {
	switch s {
	case "-", "--":
		return optionPair{}, false
	}
	match := isOptionRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		return optionPair{}, false
	}
	opt := optionPair{Option: match[2]}
	if strings.HasPrefix(match[3], "=") {
		opt.Arg = strings.TrimPrefix(match[3], "=")
		opt.HasArg = true
	}
	return opt, true
}
