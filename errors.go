// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optionparser

import (
	"errors"
)

// ErrInvalidDefinition - Indicates that an option couldn't be registered.
var ErrInvalidDefinition = errors.New("invalid option definition")

// ErrUnknownOption - Indicates a query for an option name that was never registered.
var ErrUnknownOption = errors.New("unknown option")
