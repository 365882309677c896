package matchers

import "bytes"

// Downcased lowercases the line before handing it to the submatcher. Offsets
// refer to the lowercased line.
func Downcased(submatcher Matcher) Matcher {
	return &downcased{
		matcher: submatcher,
	}
}

type downcased struct {
	matcher Matcher
}

func (d *downcased) Match(line []byte) (bool, int, int) {
	return d.matcher.Match(bytes.ToLower(line))
}
