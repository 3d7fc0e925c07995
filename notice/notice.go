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

// Package notice turns a key fingerprint into an email notice warning the
// key's owner about its expiry.
package notice

import (
	"fmt"
	"log"
	"time"

	"github.com/gofrs/uuid"

	"github.com/jakejohns/gpg-expires/emailutils"
	fpr "github.com/jakejohns/gpg-expires/fingerprint"
	"github.com/jakejohns/gpg-expires/gpgwrapper"
	"github.com/jakejohns/gpg-expires/humanize"
)

// Generator is the marker header identifying notices produced by this tool.
const Generator = "gpg-format-expiry-notice"

// DefaultSubject is used when no subject is given on the command line or in
// the config file.
const DefaultSubject = "Your OpenPGP key is about to expire"

// Notice is an expiry warning addressed to the valid identities of one key.
type Notice struct {
	Fingerprint   fpr.Fingerprint
	RecipientUids []string
	ExpiryEpoch   int64
	Subject       string
}

// Compose looks up the key with the given fingerprint and builds a Notice
// addressed to its acceptable user IDs.
// A failed lookup or a key with no valid identities returns an error: the
// caller reports it and moves on to the next fingerprint.
func Compose(lister gpgwrapper.KeyLister, fingerprint fpr.Fingerprint, subject string) (*Notice, error) {
	details, err := lister.LookupKey(fingerprint)
	if err != nil {
		return nil, fmt.Errorf("couldn't look up key: %v", err)
	}

	if len(details.Uids) == 0 {
		return nil, fmt.Errorf("no valid identities for key %s", fingerprint.Hex())
	}

	if subject == "" {
		subject = DefaultSubject
	}

	return &Notice{
		Fingerprint:   fingerprint,
		RecipientUids: details.Uids,
		ExpiryEpoch:   details.ExpiryEpoch,
		Subject:       subject,
	}, nil
}

// Render returns the complete mail: header block, blank line, then the plain
// text body. now is used to phrase how far away the expiry is.
func (n *Notice) Render(now time.Time) string {
	return n.Headers() + "\n" + n.Body(now)
}

// RenderWith is like Render but passes the body through the given armorer
// first: encrypted (and optionally signed) to the key itself when encrypt is
// true, clear-signed when only signAs is given.
func (n *Notice) RenderWith(armorer gpgwrapper.Armorer, encrypt bool, signAs *fpr.Fingerprint, now time.Time) (string, error) {
	body := n.Body(now)

	switch {
	case encrypt:
		armored, err := armorer.Encrypt(body, n.Fingerprint, signAs)
		if err != nil {
			return "", err
		}
		body = armored

	case signAs != nil:
		signed, err := armorer.ClearSign(body, *signAs)
		if err != nil {
			return "", err
		}
		body = signed
	}

	return n.Headers() + "\n" + body, nil
}

// Headers returns the mail header block: one To: line per recipient UID, the
// subject, a message id and the generator marker.
func (n *Notice) Headers() string {
	headers := ""

	for _, uid := range n.RecipientUids {
		if !emailutils.RoughlyValidateEmail(uid) {
			log.Printf("uid '%s' doesn't look like an email address", uid)
		}
		headers += fmt.Sprintf("To: %s\n", uid)
	}

	headers += fmt.Sprintf("Subject: %s\n", n.Subject)
	headers += fmt.Sprintf("Message-ID: <%s@%s>\n", uuid.Must(uuid.NewV4()), Generator)
	headers += fmt.Sprintf("X-Generated-By: %s\n", Generator)

	return headers
}

// Body returns the plain text body stating which key is affected and when it
// expires.
func (n *Notice) Body(now time.Time) string {
	body := fmt.Sprintf("The OpenPGP key %s is about to expire.\n\n", n.Fingerprint)

	if n.ExpiryEpoch == 0 {
		return body + "This key has no expiration date set.\n"
	}

	expiryTime := time.Unix(n.ExpiryEpoch, 0).UTC()

	if expiryTime.After(now) {
		body += fmt.Sprintf("It expires on %s (in %s).\n",
			expiryTime.Format("2 January 2006"),
			humanize.RoughDuration(expiryTime.Sub(now)))
	} else {
		body += fmt.Sprintf("It expired on %s.\n", expiryTime.Format("2 January 2006"))
	}

	body += "\nExtend the key's expiry date, or create and distribute a replacement key.\n"
	return body
}
