// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"github.com/DavidGamba/go-optionparser/internal/help"
)

// Help - Returns the header, one line per option in registration order and
// the footer, separated by blank lines.
//
//	Usage: grep [options] <pattern>
//
//	-c    --count      Print a count of matching lines.
//	-C    --context    Print lines of context.
//
//	Report bugs upstream.
//
// Options without a short or long form leave that column blank.
// An empty header or footer is left out together with its blank line.
func (p *Parser) Help() string {
	return help.Compose(p.header, help.OptionList(p.options, p.helpWidth), p.footer)
}
