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
	fpr "github.com/jakejohns/gpg-expires/fingerprint"
)

// KeyLister allows mocking out key lookups for testing
type KeyLister interface {
	LookupKey(fpr.Fingerprint) (*KeyDetails, error)
}

// Armorer allows mocking out the encrypt / sign operations for testing
type Armorer interface {
	Encrypt(body string, recipient fpr.Fingerprint, signAs *fpr.Fingerprint) (string, error)
	ClearSign(body string, signAs fpr.Fingerprint) (string, error)
}
