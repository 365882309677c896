package strength

import (
	_ "embed"
	"strings"
)

//go:embed weak_passwords.txt
var weakPasswordsRaw string

var weakPasswords = loadWeakPasswords(weakPasswordsRaw)

func loadWeakPasswords(raw string) map[string]struct{} {
	lines := strings.Split(raw, "\n")
	words := make(map[string]struct{}, len(lines))

	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}

		words[strings.ToLower(word)] = struct{}{}
	}

	return words
}

// IsWeakPassword reports whether the lowercased candidate is exactly one of
// the well-known weak passwords.
func IsWeakPassword(candidate string) bool {
	_, found := weakPasswords[strings.ToLower(candidate)]
	return found
}
