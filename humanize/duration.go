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

import "time"

// RoughDuration describes a duration the way a person would say it: "2
// minutes", "11 days", "3 months". Anything under a minute is "just now".
func RoughDuration(d time.Duration) string {
	day := 24 * time.Hour

	switch {
	case d < 0:
		return "don't know"

	case d < time.Minute:
		return "just now"

	case d < time.Hour:
		return Pluralize(int(d.Minutes()), "minute", "minutes")

	case d < day:
		return Pluralize(int(d.Hours()+0.5), "hour", "hours")

	case d < 60*day:
		return Pluralize(int(d/day), "day", "days")

	case d < 365*day:
		return Pluralize(int(d/(30*day)), "month", "months")

	default:
		return Pluralize(int(d/(365*day)), "year", "years")
	}
}
