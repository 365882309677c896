package matchers

import "unicode/utf8"

// Repeated matches a run of at least n identical consecutive characters.
// Characters are compared as runes, case-sensitively.
func Repeated(n int) Matcher {
	if n < 1 {
		n = 1
	}

	return &repeated{
		n: n,
	}
}

type repeated struct {
	n int
}

func (m *repeated) Match(line []byte) (bool, int, int) {
	var (
		prev     rune = -1
		runStart      = 0
		runLen        = 0
	)

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])

		if runLen > 0 && r == prev {
			runLen++
		} else {
			prev = r
			runStart = i
			runLen = 1
		}

		i += size

		if runLen >= m.n {
			return true, runStart, i
		}
	}

	return false, 0, 0
}
