package matchers

import "bytes"

type tokenMatcher struct {
	token []byte
}

// Substring matches the first case-sensitive occurrence of token. An empty
// token never matches.
func Substring(token string) Matcher {
	return &tokenMatcher{
		token: []byte(token),
	}
}

func (m *tokenMatcher) Match(candidate []byte) (bool, int, int) {
	if len(m.token) == 0 {
		return false, 0, 0
	}

	start := bytes.Index(candidate, m.token)
	if start == -1 {
		return false, 0, 0
	}

	return true, start, start + len(m.token)
}
