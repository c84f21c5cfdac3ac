// Package refcode generates human-facing booking reference codes.
package refcode

import (
	"strings"

	"github.com/google/uuid"
)

// alphabet excludes 0/O and 1/I to keep codes unambiguous over the phone
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

// Prefix prepended to every generated code
const Prefix = "AP"

// New returns a new booking reference, e.g. "AP-7KQ2MVXR".
// Uniqueness is enforced by the database constraint; the UUID source
// makes collisions on retry practically impossible.
func New() string {
	id := uuid.New()

	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteByte('-')
	for i := 0; i < codeLength; i++ {
		b.WriteByte(alphabet[int(id[i])%len(alphabet)])
	}
	return b.String()
}

// Valid reports whether s looks like a reference produced by New
func Valid(s string) bool {
	if len(s) != len(Prefix)+1+codeLength {
		return false
	}
	if !strings.HasPrefix(s, Prefix+"-") {
		return false
	}
	for _, r := range s[len(Prefix)+1:] {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
