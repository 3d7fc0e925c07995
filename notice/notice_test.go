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

package notice

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jakejohns/gpg-expires/assert"
	fpr "github.com/jakejohns/gpg-expires/fingerprint"
	"github.com/jakejohns/gpg-expires/gpgwrapper"
)

var exampleFingerprint = fpr.MustParse("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
var exampleSigner = fpr.MustParse("BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")

func TestCompose(t *testing.T) {
	t.Run("with a key that has valid identities", func(t *testing.T) {
		lister := mockKeyLister{
			details: &gpgwrapper.KeyDetails{
				Fingerprint: exampleFingerprint,
				Uids:        []string{"Joe Smith <joe@example.com>"},
				ExpiryEpoch: 2000000000,
			},
		}

		got, err := Compose(&lister, exampleFingerprint, "Renew your key")
		assert.ErrorIsNil(t, err)

		assert.Equal(t, exampleFingerprint, got.Fingerprint)
		assert.Equal(t, int64(2000000000), got.ExpiryEpoch)
		assert.Equal(t, "Renew your key", got.Subject)
		assert.AssertEqualSliceOfStrings(t,
			[]string{"Joe Smith <joe@example.com>"}, got.RecipientUids)
	})

	t.Run("an empty subject falls back to the default", func(t *testing.T) {
		lister := mockKeyLister{
			details: &gpgwrapper.KeyDetails{
				Fingerprint: exampleFingerprint,
				Uids:        []string{"<joe@example.com>"},
			},
		}

		got, err := Compose(&lister, exampleFingerprint, "")
		assert.ErrorIsNil(t, err)
		assert.Equal(t, DefaultSubject, got.Subject)
	})

	t.Run("with a key that has no valid identities", func(t *testing.T) {
		lister := mockKeyLister{
			details: &gpgwrapper.KeyDetails{
				Fingerprint: exampleFingerprint,
			},
		}

		_, err := Compose(&lister, exampleFingerprint, "")
		assert.ErrorIsNotNil(t, err)

		if !strings.Contains(err.Error(), "no valid identities") {
			t.Fatalf("expected a 'no valid identities' error, got '%v'", err)
		}
	})

	t.Run("with a failing lookup", func(t *testing.T) {
		lister := mockKeyLister{err: fmt.Errorf("gpg couldn't find key")}

		_, err := Compose(&lister, exampleFingerprint, "")
		assert.ErrorIsNotNil(t, err)
	})
}

func TestRender(t *testing.T) {
	now := time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)

	aNotice := Notice{
		Fingerprint: exampleFingerprint,
		RecipientUids: []string{
			"Joe Smith <joe@example.com>",
			"<joe-work@example.com>",
		},
		ExpiryEpoch: time.Date(2019, 6, 12, 12, 0, 0, 0, time.UTC).Unix(),
		Subject:     "Renew your key",
	}

	rendered := aNotice.Render(now)

	t.Run("has one To: line per recipient uid", func(t *testing.T) {
		assertContains(t, rendered, "To: Joe Smith <joe@example.com>\n")
		assertContains(t, rendered, "To: <joe-work@example.com>\n")
	})

	t.Run("has the subject and generator marker", func(t *testing.T) {
		assertContains(t, rendered, "Subject: Renew your key\n")
		assertContains(t, rendered, "X-Generated-By: gpg-format-expiry-notice\n")
		assertContains(t, rendered, "Message-ID: <")
	})

	t.Run("body names the key and the expiry date", func(t *testing.T) {
		assertContains(t, rendered, exampleFingerprint.String())
		assertContains(t, rendered, "It expires on 12 June 2019 (in 11 days).")
	})

	t.Run("a key with no expiry says so", func(t *testing.T) {
		unsetNotice := aNotice
		unsetNotice.ExpiryEpoch = 0

		assertContains(t, unsetNotice.Render(now), "This key has no expiration date set.")
	})

	t.Run("a key already expired says so", func(t *testing.T) {
		expiredNotice := aNotice
		expiredNotice.ExpiryEpoch = time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC).Unix()

		assertContains(t, expiredNotice.Render(now), "It expired on 1 May 2019.")
	})
}

func TestRenderWith(t *testing.T) {
	now := time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)

	aNotice := Notice{
		Fingerprint:   exampleFingerprint,
		RecipientUids: []string{"<joe@example.com>"},
		ExpiryEpoch:   2000000000,
		Subject:       "Renew your key",
	}

	t.Run("encrypt replaces the body with the armored message", func(t *testing.T) {
		armorer := mockArmorer{encrypted: "-----BEGIN PGP MESSAGE-----\nfake\n-----END PGP MESSAGE-----\n"}

		rendered, err := aNotice.RenderWith(&armorer, true, nil, now)
		assert.ErrorIsNil(t, err)

		assertContains(t, rendered, "To: <joe@example.com>\n")
		assertContains(t, rendered, "-----BEGIN PGP MESSAGE-----")
		assert.Equal(t, exampleFingerprint, armorer.encryptedTo)
		if armorer.encryptSignAs != nil {
			t.Fatalf("expected no signing key, got %v", armorer.encryptSignAs)
		}
	})

	t.Run("encrypt and sign passes the signing key through", func(t *testing.T) {
		armorer := mockArmorer{encrypted: "-----BEGIN PGP MESSAGE-----\nfake\n-----END PGP MESSAGE-----\n"}

		_, err := aNotice.RenderWith(&armorer, true, &exampleSigner, now)
		assert.ErrorIsNil(t, err)
		assert.Equal(t, exampleSigner, *armorer.encryptSignAs)
	})

	t.Run("signAs without encrypt clear-signs the body", func(t *testing.T) {
		armorer := mockArmorer{signed: "-----BEGIN PGP SIGNED MESSAGE-----\nfake"}

		rendered, err := aNotice.RenderWith(&armorer, false, &exampleSigner, now)
		assert.ErrorIsNil(t, err)

		assertContains(t, rendered, "-----BEGIN PGP SIGNED MESSAGE-----")
		assert.Equal(t, exampleSigner, armorer.signedAs)
	})

	t.Run("neither encrypt nor signAs leaves the body unchanged", func(t *testing.T) {
		armorer := mockArmorer{}

		rendered, err := aNotice.RenderWith(&armorer, false, nil, now)
		assert.ErrorIsNil(t, err)
		assertContains(t, rendered, "The OpenPGP key")
		assertContains(t, rendered, "It expires on")
	})

	t.Run("an armorer failure propagates", func(t *testing.T) {
		armorer := mockArmorer{err: fmt.Errorf("gpg exploded")}

		_, err := aNotice.RenderWith(&armorer, true, nil, now)
		assert.ErrorIsNotNil(t, err)
	})
}

func assertContains(t *testing.T, haystack string, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected to find '%s' in:\n%s", needle, haystack)
	}
}

type mockKeyLister struct {
	details *gpgwrapper.KeyDetails
	err     error
}

func (m *mockKeyLister) LookupKey(fingerprint fpr.Fingerprint) (*gpgwrapper.KeyDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.details, nil
}

type mockArmorer struct {
	encrypted     string
	signed        string
	err           error
	encryptedTo   fpr.Fingerprint
	encryptSignAs *fpr.Fingerprint
	signedAs      fpr.Fingerprint
}

func (m *mockArmorer) Encrypt(body string, recipient fpr.Fingerprint, signAs *fpr.Fingerprint) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.encryptedTo = recipient
	m.encryptSignAs = signAs
	return m.encrypted, nil
}

func (m *mockArmorer) ClearSign(body string, signAs fpr.Fingerprint) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.signedAs = signAs
	return m.signed, nil
}
