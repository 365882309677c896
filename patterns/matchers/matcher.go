package matchers

// Matcher reports whether a line matches and, if so, the byte offsets of the
// first match.
type Matcher interface {
	Match([]byte) (bool, int, int)
}
