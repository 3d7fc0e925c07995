// Copyright 2019 Jake Johns
//
// This file is part of gpg-expires, a pair of tools for finding OpenPGP
// keys which are about to expire.
//
// gpg-expires is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpg-expires is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with gpg-expires.  If not, see <https://www.gnu.org/licenses/>.

// Package ui formats messages for people, as opposed to the primary output
// that gets piped into other tools. Everything here goes to the diagnostic
// stream.
package ui

import (
	"github.com/jakejohns/gpg-expires/colour"
	"github.com/jakejohns/gpg-expires/out"
)

// PrintFailed reports a problem the program is going to terminate over.
func PrintFailed(message string) {
	out.PrintError(" " + colour.Failure("▸   "+message) + "\n")
}

// PrintWarning reports a problem the program is going to continue past.
func PrintWarning(message string) {
	out.PrintError(" " + colour.Warning("▸   "+message) + "\n")
}

// PrintInfo draws attention to something that isn't a problem at all.
func PrintInfo(message string) {
	out.PrintError(" " + colour.Info("▸") + "   " + message + "\n")
}
