// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - internal help rendering.
package help

import (
	"strings"

	"github.com/DavidGamba/go-optionparser/internal/option"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
)

// Padding - spaces between columns.
var Padding = 4

// longestWidth - Given a slice of strings it returns the display width of the widest one.
func longestWidth(s []string) int {
	w := 0
	for _, e := range s {
		if l := runewidth.StringWidth(e); l > w {
			w = l
		}
	}
	return w
}

// OptionList - Return one line per option, in the given order, with the short
// form, long form and description columns aligned.
// Columns that are empty for every option are left out.
// When width > 0 descriptions are wrapped to fit in width columns.
func OptionList(options []*option.Option, width int) string {
	if len(options) == 0 {
		return ""
	}
	shorts := make([]string, 0, len(options))
	longs := make([]string, 0, len(options))
	for _, opt := range options {
		shorts = append(shorts, opt.Short)
		longs = append(longs, opt.Long)
	}
	shortWidth := longestWidth(shorts)
	longWidth := longestWidth(longs)
	gutter := strings.Repeat(" ", Padding)

	lines := []string{}
	for _, opt := range options {
		cells := []string{}
		if shortWidth > 0 {
			cells = append(cells, runewidth.FillRight(opt.Short, shortWidth))
		}
		if longWidth > 0 {
			cells = append(cells, runewidth.FillRight(opt.Long, longWidth))
		}
		prefix := strings.Join(cells, gutter)
		if opt.Description == "" {
			lines = append(lines, strings.TrimRight(prefix, " "))
			continue
		}
		if prefix != "" {
			prefix += gutter
		}
		indent := runewidth.StringWidth(prefix)
		for i, l := range descriptionLines(opt.Description, width-indent) {
			if i == 0 {
				lines = append(lines, strings.TrimRight(prefix+l, " "))
				continue
			}
			lines = append(lines, strings.TrimRight(strings.Repeat(" ", indent)+l, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// descriptionLines - Splits the description in lines, wrapping each one to
// limit columns when limit > 0.
func descriptionLines(description string, limit int) []string {
	if limit <= 0 {
		return strings.Split(description, "\n")
	}
	return strings.Split(wordwrap.WrapString(description, uint(limit)), "\n")
}

// Compose - Joins the header, option list and footer with a blank line
// between them. Empty sections are skipped.
func Compose(header, list, footer string) string {
	sections := []string{}
	for _, s := range []string{header, list, footer} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}
