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

const messageHeader = "-----BEGIN PGP MESSAGE-----"
const signedMessageHeader = "-----BEGIN PGP SIGNED MESSAGE-----"

// Encrypt returns the given body encrypted to the key with the given
// fingerprint as an ascii-armored message. If signAs is non-nil the message
// is also signed with that key.
func (g *GnuPG) Encrypt(body string, recipient fpr.Fingerprint, signAs *fpr.Fingerprint) (string, error) {
	args := encryptArgs(recipient, signAs)

	stdout, _, err := g.runWithStdin(body, args...)
	if err != nil {
		return "", fmt.Errorf("problem encrypting to %s: %v", recipient.Hex(), err)
	}

	if !strings.Contains(stdout, messageHeader) {
		return "", fmt.Errorf("gpg didn't return an ascii-armored message for %s", recipient.Hex())
	}

	return stdout, nil
}

// ClearSign returns the given body clear-signed with the given key.
func (g *GnuPG) ClearSign(body string, signAs fpr.Fingerprint) (string, error) {
	args := clearSignArgs(signAs)

	stdout, _, err := g.runWithStdin(body, args...)
	if err != nil {
		return "", fmt.Errorf("problem signing as %s: %v", signAs.Hex(), err)
	}

	if !strings.Contains(stdout, signedMessageHeader) {
		return "", fmt.Errorf("gpg didn't return a signed message for %s", signAs.Hex())
	}

	return stdout, nil
}

func encryptArgs(recipient fpr.Fingerprint, signAs *fpr.Fingerprint) []string {
	args := []string{
		"--armor",
		"--trust-model", "always",
		"--encrypt",
		"--recipient", recipient.Hex(),
	}

	if signAs != nil {
		args = append(args, "--sign", "--local-user", signAs.Hex())
	}

	return args
}

func clearSignArgs(signAs fpr.Fingerprint) []string {
	return []string{
		"--armor",
		"--clearsign",
		"--local-user", signAs.Hex(),
	}
}
