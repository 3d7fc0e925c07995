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
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeDateRegexp = regexp.MustCompile(`^([+-]?)(\d+)([dwmy])$`)

// ParseDateExpression turns a date expression from the command line into a
// point in time. It accepts:
//
//	now              the given reference time
//	1553352419       epoch seconds
//	2019-03-23       an absolute date (midnight UTC)
//	2019-03-23T14:35:15Z   an RFC 3339 timestamp
//	30d  6w  3m  1y  an offset from the reference time, optionally
//	                 prefixed with + or -
func ParseDateExpression(expression string, now time.Time) (time.Time, error) {
	expression = strings.TrimSpace(expression)

	if expression == "now" {
		return now, nil
	}

	if match := relativeDateRegexp.FindStringSubmatch(expression); match != nil {
		return parseRelativeDate(match, now), nil
	}

	if seconds, err := strconv.ParseInt(expression, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC(), nil
	}

	if absolute, err := time.Parse("2006-01-02", expression); err == nil {
		return absolute, nil
	}

	if absolute, err := time.Parse(time.RFC3339, expression); err == nil {
		return absolute, nil
	}

	return time.Time{}, fmt.Errorf("couldn't parse date expression '%s'", expression)
}

func parseRelativeDate(match []string, now time.Time) time.Time {
	sign := 1
	if match[1] == "-" {
		sign = -1
	}

	// the regexp guarantees this is an integer
	quantity, _ := strconv.Atoi(match[2])
	quantity *= sign

	switch match[3] {
	case "d":
		return now.AddDate(0, 0, quantity)
	case "w":
		return now.AddDate(0, 0, 7*quantity)
	case "m":
		return now.AddDate(0, quantity, 0)
	default:
		return now.AddDate(quantity, 0, 0)
	}
}
