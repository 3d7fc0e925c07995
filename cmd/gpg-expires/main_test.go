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

package main

import (
	"testing"

	"github.com/docopt/docopt-go"

	"github.com/jakejohns/gpg-expires/assert"
)

func parseArgv(t *testing.T, argv []string) docopt.Opts {
	t.Helper()
	args, err := docopt.ParseArgs(usage("", ""), argv, Version)
	assert.ErrorIsNil(t, err)
	return args
}

func TestCapabilitiesOption(t *testing.T) {
	t.Run("falls back to the configured default when -c isn't given", func(t *testing.T) {
		args := parseArgv(t, []string{})

		got := stringOption(args, "--capabilities", "es")
		assert.Equal(t, "es", got)
	})

	t.Run("the flag wins over the configured default", func(t *testing.T) {
		args := parseArgv(t, []string{"-c", "sca"})

		got := stringOption(args, "--capabilities", "es")
		assert.Equal(t, "sca", got)
	})
}

func TestBeforeOption(t *testing.T) {
	t.Run("falls back to the configured default when -b isn't given", func(t *testing.T) {
		args := parseArgv(t, []string{})

		got := stringOption(args, "--before", "30d")
		assert.Equal(t, "30d", got)
	})

	t.Run("the flag wins over the configured default", func(t *testing.T) {
		args := parseArgv(t, []string{"-b", "90d"})

		got := stringOption(args, "--before", "30d")
		assert.Equal(t, "90d", got)
	})
}

func TestValidFormat(t *testing.T) {
	t.Run("accepts the four known formats", func(t *testing.T) {
		for _, format := range []string{"fpr", "fprdate", "list", "colon"} {
			assert.Equal(t, true, validFormat(format))
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		assert.Equal(t, false, validFormat("json"))
		assert.Equal(t, false, validFormat(""))
	})
}
