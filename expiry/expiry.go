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

package expiry

import (
	"strings"

	"github.com/jakejohns/gpg-expires/gpgwrapper"
)

// Window describes a span of time that key expiry dates are matched against.
// Callers must arrange that After <= Before: Includes is a pure predicate
// and doesn't check the ordering itself.
type Window struct {

	// After and Before are epoch seconds. An expiry is inside the window
	// when it falls strictly between them.
	After  int64
	Before int64

	// WarnOnUnset additionally matches keys with no expiration at all
	// (expiry epoch 0), whatever the bounds say.
	WarnOnUnset bool
}

// Includes tells whether the given expiry epoch falls inside the window.
// Equality at either bound is excluded.
func (w Window) Includes(expiryEpoch int64) bool {
	if w.WarnOnUnset && expiryEpoch == 0 {
		return true
	}

	return w.After < expiryEpoch && expiryEpoch < w.Before
}

// FilterWindow returns the subsequence of summaries whose expiry falls
// inside the window, preserving order.
func FilterWindow(summaries []gpgwrapper.KeySummary, window Window) []gpgwrapper.KeySummary {
	var matched []gpgwrapper.KeySummary

	for _, summary := range summaries {
		if window.Includes(summary.ExpiryEpoch) {
			matched = append(matched, summary)
		}
	}
	return matched
}

// FilterCapabilities returns the subsequence of summaries having at least
// one capability flag in common with requested, preserving order.
// An empty requested set matches nothing.
func FilterCapabilities(summaries []gpgwrapper.KeySummary, requested string) []gpgwrapper.KeySummary {
	var matched []gpgwrapper.KeySummary

	for _, summary := range summaries {
		if HasAnyCapability(summary.Capabilities, requested) {
			matched = append(matched, summary)
		}
	}
	return matched
}

// HasAnyCapability tells whether capabilities and requested share at least
// one character. It's a set intersection test: order and repetition don't
// matter.
func HasAnyCapability(capabilities string, requested string) bool {
	return strings.ContainsAny(capabilities, requested)
}
