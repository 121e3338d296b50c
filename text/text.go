// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorMissingName - error when an option is registered without a name.
var ErrorMissingName = "option name can't be empty"

// ErrorDuplicateName - error when the option name was already registered.
var ErrorDuplicateName = "option name '%s' already registered"

// ErrorUnreachable - error when an option has neither short nor long form.
var ErrorUnreachable = "option '%s' needs a short or a long form"

// ErrorInvalidShortForm - error when the short form doesn't look like -x.
var ErrorInvalidShortForm = "option '%s': invalid short form '%s', expected a single dash followed by an identifier"

// ErrorInvalidLongForm - error when the long form doesn't look like --xyz.
var ErrorInvalidLongForm = "option '%s': invalid long form '%s', expected a double dash followed by an identifier"

// ErrorDuplicateForm - error when the form is already in use by another option.
var ErrorDuplicateForm = "option '%s': form '%s' already defined by option '%s'"

// ErrorUnknownOption - error when querying an option that was never registered.
var ErrorUnknownOption = "'%s'"

// MessageUnknownFlag - debug message when a flag shaped token doesn't match any option.
var MessageUnknownFlag = "unknown flag '%s', passing it as a positional argument"
