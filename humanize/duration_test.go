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

package humanize

import (
	"testing"
	"time"
)

func TestRoughDuration(t *testing.T) {

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "1 second",
			duration: time.Duration(1) * time.Second,
			expected: "just now",
		},
		{
			name:     "1 minute",
			duration: time.Duration(1) * time.Minute,
			expected: "1 minute",
		},
		{
			name:     "59 minutes",
			duration: time.Duration(59) * time.Minute,
			expected: "59 minutes",
		},
		{
			name:     "60 minutes",
			duration: time.Duration(60) * time.Minute,
			expected: "1 hour",
		},
		{
			name:     "1 hour 30",
			duration: time.Duration(90) * time.Minute,
			expected: "2 hours",
		},
		{
			name:     "23 hours 29",
			duration: time.Duration(23*60+29) * time.Minute,
			expected: "23 hours",
		},
		{
			name:     "24 hours",
			duration: time.Duration(24) * time.Hour,
			expected: "1 day",
		},
		{
			name:     "11 days",
			duration: time.Duration(11*24) * time.Hour,
			expected: "11 days",
		},
		{
			name:     "59 days",
			duration: time.Duration(59*24) * time.Hour,
			expected: "59 days",
		},
		{
			name:     "61 days",
			duration: time.Duration(61*24) * time.Hour,
			expected: "2 months",
		},
		{
			name:     "400 days",
			duration: time.Duration(400*24) * time.Hour,
			expected: "1 year",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := RoughDuration(test.duration)
			if got != test.expected {
				t.Errorf("expected '%s', got '%s'", test.expected, got)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	t.Run("with a quantity of 1", func(t *testing.T) {
		got := Pluralize(1, "key", "keys")
		if got != "1 key" {
			t.Errorf("expected '1 key', got '%s'", got)
		}
	})

	t.Run("with a quantity of 2", func(t *testing.T) {
		got := Pluralize(2, "key", "keys")
		if got != "2 keys" {
			t.Errorf("expected '2 keys', got '%s'", got)
		}
	})
}
