package fingerprint

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

type fingerprintBytes = [20]byte

// Fingerprint represents a full 40 hex digit OpenPGP key fingerprint.
type Fingerprint struct {
	fingerprintBytes

	isSet bool
}

// Parse takes a string and returns a Fingerprint.
// Accepts fingerprints with spaces, upper and lower case and an optional
// leading `0x`.
func Parse(fp string) (Fingerprint, error) {
	var nilFingerprint Fingerprint
	withoutSpaces := strings.Replace(fp, " ", "", -1)

	expectedPattern := `^(0x)?[A-Fa-f0-9]{40}$`
	if matched, err := regexp.MatchString(expectedPattern, withoutSpaces); !matched || err != nil {
		return nilFingerprint, fmt.Errorf("fingerprint doesn't match pattern '%v', err=%v", expectedPattern, err)
	}

	withoutLeading0x := strings.TrimPrefix(withoutSpaces, "0x")

	bytes, err := hex.DecodeString(withoutLeading0x)
	if err != nil {
		return nilFingerprint, err
	}
	var f Fingerprint
	for i, b := range bytes {
		f.fingerprintBytes[i] = b
	}
	f.isSet = true
	return f, nil
}

// MustParse takes a string and returns a Fingerprint. If the
// string is not a valid fingerprint (e.g. 40 hex characters) it will panic.
func MustParse(fp string) Fingerprint {
	result, err := Parse(fp)
	if err != nil {
		panic(err)
	}
	return result
}

// String returns the fingerprint in the "human friendly" format, for example
// `AB01 AB01 AB01 AB01 AB01  AB01 AB01 AB01 AB01 AB01`
func (f Fingerprint) String() string {
	f.assertIsSet()
	b := f.fingerprintBytes

	return fmt.Sprintf(
		"%0X %0X %0X %0X %0X  %0X %0X %0X %0X %0X",
		b[0:2], b[2:4], b[4:6], b[6:8], b[8:10],
		b[10:12], b[12:14], b[14:16], b[16:18], b[18:20],
	)
}

// Hex returns the fingerprint as uppercase hex (20 bytes, 40 characters)
// without spaces, for example:
// `AB01AB01AB01AB01AB01AB01AB01AB01AB01AB01`
func (f Fingerprint) Hex() string {
	f.assertIsSet()
	b := f.fingerprintBytes

	return fmt.Sprintf("%0X", b)
}

func (f Fingerprint) IsSet() bool {
	return f.isSet
}

// Contains tells whether needle is present in the given slice of
// fingerprints.
func Contains(haystack []Fingerprint, needle Fingerprint) bool {
	for _, f := range haystack {
		if f == needle {
			return true
		}
	}
	return false
}

func (f Fingerprint) assertIsSet() {
	if !f.IsSet() {
		panic(fmt.Errorf("tried to use a Fingerprint which hasn't been set"))
	}
}
