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

package colour

import (
	"strings"
)

func Info(message string) string {
	return bright + blue(message)
}

func Warning(message string) string {
	return yellow(message)
}

func Failure(message string) string {
	return red(message)
}

func blue(message string) string {
	return fgBlue + message + reset
}

func red(message string) string {
	return fgRed + message + reset
}

func yellow(message string) string {
	return fgYellow + message + reset
}

// StripAllColourCodes strips all the ANSI colour codes from a string
func StripAllColourCodes(message string) string {
	for _, colourCode := range allColourCodes {
		message = strings.Replace(message, colourCode, "", -1)
	}

	return message
}
