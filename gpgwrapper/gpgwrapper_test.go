package gpgwrapper

import (
	"testing"

	"github.com/jakejohns/gpg-expires/assert"
	"github.com/jakejohns/gpg-expires/fingerprint"
)

func TestParseVersionString(t *testing.T) {
	t.Run("with sample output from GnuPG 2", func(t *testing.T) {
		version, err := parseVersionString("gpg (GnuPG/MacGPG2) 2.2.4\nlibgcrypt 1.8.1")
		assert.ErrorIsNil(t, err)
		assert.Equal(t, "2.2.4", version)
	})

	t.Run("with output missing a version string", func(t *testing.T) {
		_, err := parseVersionString("une pipe")
		assert.ErrorIsNotNil(t, err)
		assert.Equal(t, ErrNoVersionStringFound, err)
	})
}

func TestEncryptArgs(t *testing.T) {
	recipient := fingerprint.MustParse("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	signer := fingerprint.MustParse("BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")

	t.Run("encrypt only", func(t *testing.T) {
		assert.AssertEqualSliceOfStrings(t,
			[]string{
				"--armor",
				"--trust-model", "always",
				"--encrypt",
				"--recipient", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			},
			encryptArgs(recipient, nil))
	})

	t.Run("encrypt and sign", func(t *testing.T) {
		assert.AssertEqualSliceOfStrings(t,
			[]string{
				"--armor",
				"--trust-model", "always",
				"--encrypt",
				"--recipient", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
				"--sign",
				"--local-user", "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB",
			},
			encryptArgs(recipient, &signer))
	})
}

func TestClearSignArgs(t *testing.T) {
	signer := fingerprint.MustParse("BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")

	assert.AssertEqualSliceOfStrings(t,
		[]string{
			"--armor",
			"--clearsign",
			"--local-user", "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB",
		},
		clearSignArgs(signer))
}

func TestPrependGlobalArguments(t *testing.T) {
	t.Run("with no home directory", func(t *testing.T) {
		g := GnuPG{}
		assert.AssertEqualSliceOfStrings(t,
			[]string{"--batch", "--no-tty", "--version"},
			g.prependGlobalArguments("--version"))
	})

	t.Run("with a home directory", func(t *testing.T) {
		g := GnuPG{HomeDir: "/tmp/gnupg"}
		assert.AssertEqualSliceOfStrings(t,
			[]string{"--batch", "--no-tty", "--homedir", "/tmp/gnupg", "--version"},
			g.prependGlobalArguments("--version"))
	})
}
