package breach

import (
	"crypto"
	_ "crypto/sha1"
	"encoding/hex"
	"strings"
)

const PrefixLength = 5

// HashRange splits the uppercase hex SHA-1 of the candidate's UTF-8 bytes
// into the 5 character prefix that may be disclosed and the 35 character
// suffix that must not be.
func HashRange(candidate string) (prefix string, suffix string, err error) {
	if !crypto.SHA1.Available() {
		return "", "", ErrHashingUnavailable
	}

	h := crypto.SHA1.New()
	h.Write([]byte(candidate))

	digest := strings.ToUpper(hex.EncodeToString(h.Sum(nil)))

	return digest[:PrefixLength], digest[PrefixLength:], nil
}

func validPrefix(prefix string) bool {
	if len(prefix) != PrefixLength {
		return false
	}

	for _, c := range prefix {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return false
		}
	}

	return true
}
