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

package gpgwrapper

import (
	"fmt"
	"strconv"
	"strings"

	fpr "github.com/jakejohns/gpg-expires/fingerprint"
)

// KeySummary is one fingerprint from the keyring together with the expiry
// and capability flags of the primary key or subkey which owns it.
type KeySummary struct {
	Fingerprint fpr.Fingerprint

	// ExpiryEpoch is the expiry time in seconds since the epoch, with 0
	// meaning the key never expires.
	ExpiryEpoch int64

	// Capabilities is the string of single-letter capability flags from
	// the owning pub/sub record, e.g. "scESC".
	Capabilities string
}

// Line returns the summary as a space-delimited
// `<fingerprint> <expiry epoch> <capabilities>` record.
func (k KeySummary) Line() string {
	return fmt.Sprintf("%s %d %s", k.Fingerprint.Hex(), k.ExpiryEpoch, k.Capabilities)
}

// parseKeySummaries parses the output of
// `--with-colons --with-fingerprint --list-keys` into one KeySummary per
// `fpr` record.
// For the format of the colon-delimited string, see:
// https://github.com/gpg/gnupg/blob/master/doc/DETAILS
func parseKeySummaries(colonDelimitedString string) []KeySummary {
	parser := keySummaryParser{}

	for _, line := range strings.Split(colonDelimitedString, "\n") {
		parser.PushLine(strings.Split(line, ":"))
	}

	return parser.Summaries()
}

// keySummaryParser takes a line at a time from the colon-delimited output
// format of `gpg --list-keys`.
// gpg prints the expiry and capabilities on the `pub` / `sub` record and the
// fingerprint on the `fpr` record which immediately follows it, so the parser
// carries the most recently seen expiry and capabilities and reads them back
// each time a fingerprint line arrives. gpg guarantees that ordering, the
// parser doesn't try to validate it.
type keySummaryParser struct {
	currentExpiry       int64
	currentCapabilities string
	summaries           []KeySummary
}

// PushLine adds a line to the parser, which builds up its internal summaries.
func (p *keySummaryParser) PushLine(cols []string) {

	typeOfRecord := field(cols, 1)

	switch typeOfRecord {
	case "pub", "sub":
		p.handleKeyLine(cols)
		return

	case "fpr":
		p.handleFingerprintLine(cols)
		return
	}
}

// Summaries returns the key summaries that have been accumulated so far.
func (p *keySummaryParser) Summaries() []KeySummary {
	return p.summaries
}

func (p *keySummaryParser) handleKeyLine(cols []string) {
	p.currentExpiry = parseExpiry(field(cols, 7))
	p.currentCapabilities = field(cols, 12)
}

func (p *keySummaryParser) handleFingerprintLine(cols []string) {
	fingerprint, err := fpr.Parse(field(cols, 10))
	if err != nil {
		// Not a usable fingerprint (v3 keys have shorter ones, for
		// example). Skip it.
		return
	}

	p.summaries = append(p.summaries, KeySummary{
		Fingerprint:  fingerprint,
		ExpiryEpoch:  p.currentExpiry,
		Capabilities: p.currentCapabilities,
	})
}

// parseExpiry reads gpg's expiration date field. An empty field means the
// key never expires, which is represented as 0.
func parseExpiry(expiryField string) int64 {
	if expiryField == "" {
		return 0
	}

	seconds, err := strconv.ParseInt(expiryField, 10, 64)
	if err != nil {
		return 0
	}
	return seconds
}

// field returns the 1-indexed field as counted in gpg's DETAILS document,
// or "" if the record has fewer fields.
func field(cols []string, index int) string {
	if index > len(cols) {
		return ""
	}
	return cols[index-1]
}
