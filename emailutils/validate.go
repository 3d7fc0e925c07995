package emailutils

import "strings"

// RoughlyValidateEmail checks whether a uid contains something that looks
// like an email address: an @ with text either side of it. gpg user IDs are
// free-form, so this is deliberately rough rather than RFC 5322 parsing.
func RoughlyValidateEmail(uid string) bool {
	at := strings.Index(uid, "@")
	return at > 0 && at < len(uid)-1
}
