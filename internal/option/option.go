// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option struct and methods.
package option

import (
	"io"
	"log"
	"regexp"
	"strings"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

var (
	shortFormRegex = regexp.MustCompile(`^-[A-Za-z0-9][A-Za-z0-9_-]*$`)
	longFormRegex  = regexp.MustCompile(`^--[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

// Option - main object
type Option struct {
	Name        string
	Short       string // Short form, e.g. -c. Empty when absent.
	Long        string // Long form, e.g. --count. Empty when absent.
	Description string // Description used for help

	Called bool // Indicates if the option was passed on the command line

	values []string
}

// New - Returns a new option object
func New(name, short, long, description string) *Option {
	return &Option{
		Name:        name,
		Short:       short,
		Long:        long,
		Description: description,
	}
}

// ValidShort - Tells if s is a valid short form: a single dash followed by an identifier.
func ValidShort(s string) bool {
	return shortFormRegex.MatchString(s)
}

// ValidLong - Tells if s is a valid long form: a double dash followed by an identifier.
func ValidLong(s string) bool {
	return longFormRegex.MatchString(s)
}

// Forms - Returns the defined forms, short first.
func (opt *Option) Forms() []string {
	forms := []string{}
	if opt.Short != "" {
		forms = append(forms, opt.Short)
	}
	if opt.Long != "" {
		forms = append(forms, opt.Long)
	}
	return forms
}

// MatchExact - Tells if token spells the short or the long form verbatim.
func (opt *Option) MatchExact(token string) bool {
	return (opt.Short != "" && token == opt.Short) ||
		(opt.Long != "" && token == opt.Long)
}

// MatchAttached - Tells if token carries a value attached to one of the forms.
// For the short form the value is whatever follows the form (-c123).
// For the long form the value is whatever follows the first '=' (--count=123), possibly empty.
func (opt *Option) MatchAttached(token string) (string, bool) {
	if opt.Short != "" && len(token) > len(opt.Short) && strings.HasPrefix(token, opt.Short) {
		return token[len(opt.Short):], true
	}
	if opt.Long != "" && strings.HasPrefix(token, opt.Long+"=") {
		return token[len(opt.Long)+1:], true
	}
	return "", false
}

// Save - Marks the option as called and appends the given values.
func (opt *Option) Save(values ...string) {
	Logger.Printf("name: %s, values: %q", opt.Name, values)
	opt.Called = true
	opt.values = append(opt.values, values...)
}

// Values - Returns a copy of the values saved since the last Reset.
func (opt *Option) Values() []string {
	out := make([]string, len(opt.values))
	copy(out, opt.values)
	return out
}

// Reset - Clears the parse state.
func (opt *Option) Reset() {
	opt.Called = false
	opt.values = nil
}
