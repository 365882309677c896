package matchers

// Multi matches when any of its submatchers match. The reported offsets are
// those of the first submatcher to match, in argument order.
func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

// SubstringMulti is shorthand for a Multi of Substring matchers.
func SubstringMulti(tokens ...string) Matcher {
	ms := make([]Matcher, len(tokens))
	for i := range tokens {
		ms[i] = Substring(tokens[i])
	}

	return Multi(ms...)
}

type multi struct {
	matchers []Matcher
}

func (m *multi) Match(line []byte) (bool, int, int) {
	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(line); match {
			return true, start, end
		}
	}

	return false, 0, 0
}
