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
	"strings"

	fpr "github.com/jakejohns/gpg-expires/fingerprint"
)

// KeyDetails describes a single looked-up key: the user IDs a notice can be
// addressed to and the expiry of the key matching the queried fingerprint.
type KeyDetails struct {
	Fingerprint fpr.Fingerprint

	// Uids is the list of user ID strings whose validity is acceptable,
	// i.e. not flagged as not-valid, expired or revoked.
	Uids []string

	// ExpiryEpoch is the expiry of the primary key or subkey whose
	// fingerprint matched the lookup, 0 meaning no expiration.
	ExpiryEpoch int64
}

// parseKeyDetails parses a single-key colon listing, collecting acceptable
// uids and the expiry carried by the record whose fingerprint matches
// `target` exactly. A listing can contain several fpr lines (one per subkey)
// so matching on the fingerprint itself is what distinguishes the key that
// was asked about.
func parseKeyDetails(colonDelimitedString string, target fpr.Fingerprint) (*KeyDetails, error) {
	parser := keyDetailsParser{target: target}

	for _, line := range strings.Split(colonDelimitedString, "\n") {
		parser.PushLine(strings.Split(line, ":"))
	}

	return parser.Details()
}

type keyDetailsParser struct {
	target        fpr.Fingerprint
	currentExpiry int64

	foundTarget  bool
	targetExpiry int64
	uids         []string
}

func (p *keyDetailsParser) PushLine(cols []string) {

	typeOfRecord := field(cols, 1)

	switch typeOfRecord {
	case "pub", "sub":
		p.currentExpiry = parseExpiry(field(cols, 7))
		return

	case "fpr":
		p.handleFingerprintLine(cols)
		return

	case "uid":
		p.handleUidLine(cols)
		return
	}
}

// Details returns the parsed key, or an error if the listing never mentioned
// the fingerprint that was looked up.
func (p *keyDetailsParser) Details() (*KeyDetails, error) {
	if !p.foundTarget {
		return nil, fmt.Errorf("fingerprint %s not found in listing", p.target.Hex())
	}

	return &KeyDetails{
		Fingerprint: p.target,
		Uids:        p.uids,
		ExpiryEpoch: p.targetExpiry,
	}, nil
}

func (p *keyDetailsParser) handleFingerprintLine(cols []string) {
	fingerprint, err := fpr.Parse(field(cols, 10))
	if err != nil {
		return
	}

	if fingerprint == p.target {
		p.foundTarget = true
		p.targetExpiry = p.currentExpiry
	}
}

func (p *keyDetailsParser) handleUidLine(cols []string) {
	validity := field(cols, 2)
	if validity == "n" || validity == "e" || validity == "r" {
		// Not-valid, expired or revoked: nobody should be emailed at
		// this identity.
		// https://github.com/gpg/gnupg/blob/master/doc/DETAILS#field-2---validity
		return
	}

	uid := unquoteColons(field(cols, 10))
	if uid == "" {
		return
	}

	p.uids = append(p.uids, uid)
}

// unquoteColons reverses gpg's escaping of colons inside field values, which
// are emitted as `\x3a`.
func unquoteColons(uid string) string {
	return strings.Replace(uid, `\x3a`, ":", -1)
}
