package strength

// CharacterClasses records which of the four character classes appear in a
// candidate. Letters and digits are the ASCII ranges; everything else,
// including non-ASCII letters, is Other.
type CharacterClasses struct {
	Lower bool
	Upper bool
	Digit bool
	Other bool
}

func Classify(candidate string) CharacterClasses {
	var classes CharacterClasses

	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			classes.Lower = true
		case r >= 'A' && r <= 'Z':
			classes.Upper = true
		case r >= '0' && r <= '9':
			classes.Digit = true
		default:
			classes.Other = true
		}
	}

	return classes
}

func (c CharacterClasses) Count() int {
	count := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Other} {
		if present {
			count++
		}
	}

	return count
}

// CharsetSize is the size of the alphabet implied by the present classes:
// 26 lowercase, 26 uppercase, 10 digits and 32 symbols.
func (c CharacterClasses) CharsetSize() int {
	size := 0
	if c.Lower {
		size += 26
	}
	if c.Upper {
		size += 26
	}
	if c.Digit {
		size += 10
	}
	if c.Other {
		size += 32
	}

	return size
}
