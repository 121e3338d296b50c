// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"fmt"

	"github.com/DavidGamba/go-optionparser/internal/option"
	"github.com/DavidGamba/go-optionparser/text"
)

// Register - Defines an option identified by name.
//
// short is a single dash form like `-c` and long a double dash form like
// `--count`; either one can be left empty but not both.
// The description is only used by Help.
//
// Names and forms must be unique: registering a name or a form a second
// time fails and the first definition stays in place.
// Any error wraps ErrInvalidDefinition and leaves the parser unchanged.
func (p *Parser) Register(short, long, description, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s", ErrInvalidDefinition, text.ErrorMissingName)
	}
	if _, ok := p.byName[name]; ok {
		return fmt.Errorf("%w: "+text.ErrorDuplicateName, ErrInvalidDefinition, name)
	}
	if short == "" && long == "" {
		return fmt.Errorf("%w: "+text.ErrorUnreachable, ErrInvalidDefinition, name)
	}
	if short != "" && !option.ValidShort(short) {
		return fmt.Errorf("%w: "+text.ErrorInvalidShortForm, ErrInvalidDefinition, name, short)
	}
	if long != "" && !option.ValidLong(long) {
		return fmt.Errorf("%w: "+text.ErrorInvalidLongForm, ErrInvalidDefinition, name, long)
	}

	opt := option.New(name, short, long, description)
	for _, form := range opt.Forms() {
		if other, ok := p.byForm[form]; ok {
			return fmt.Errorf("%w: "+text.ErrorDuplicateForm, ErrInvalidDefinition, name, form, other.Name)
		}
	}

	p.options = append(p.options, opt)
	p.byName[name] = opt
	for _, form := range opt.Forms() {
		p.byForm[form] = opt
	}
	Logger.Printf("registered option: %s, short: %q, long: %q", name, short, long)
	return nil
}

// Enabled - Indicates if the option was passed in the last Parse call,
// with or without a value.
// Returns false for names that were never registered.
func (p *Parser) Enabled(name string) bool {
	opt, ok := p.byName[name]
	if !ok {
		return false
	}
	return opt.Called
}

// Values - Returns the values captured for the option in the last Parse
// call, in the order they were found.
// The slice is empty when the option wasn't passed or was only passed as a
// bare flag.
// For names that were never registered it returns an empty slice and an
// error wrapping ErrUnknownOption.
func (p *Parser) Values(name string) ([]string, error) {
	opt, ok := p.byName[name]
	if !ok {
		return []string{}, fmt.Errorf("%w: "+text.ErrorUnknownOption, ErrUnknownOption, name)
	}
	return opt.Values(), nil
}

// Value - Index style lookup, same as Values but without the error.
// Unknown names return an empty slice.
func (p *Parser) Value(name string) []string {
	values, err := p.Values(name)
	if err != nil {
		Logger.Printf("value lookup: %s", err)
	}
	return values
}

// Positional - Returns the positional arguments of the last Parse call.
func (p *Parser) Positional() []string {
	out := make([]string, len(p.positional))
	copy(out, p.positional)
	return out
}

// Names - Returns the registered option names in registration order.
func (p *Parser) Names() []string {
	names := make([]string, 0, len(p.options))
	for _, opt := range p.options {
		names = append(names, opt.Name)
	}
	return names
}
