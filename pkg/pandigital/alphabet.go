package pandigital

const hexDigits = "0123456789ABCDEF"

// buildAlphabet returns the ordered digits valid for the configuration.
// Base 16 always yields the full hex set, RequireZero notwithstanding.
func buildAlphabet(c Config) string {
	if c.Base == HexBase {
		return hexDigits
	}

	start := 0
	if !c.RequireZero {
		start = 1
	}
	if start >= c.Base {
		return ""
	}
	return hexDigits[start:c.Base]
}

// minLength is the fewest characters a qualifying value can have.
func minLength(c Config) int {
	if c.RequireZero {
		return c.Base
	}
	return c.Base - 1
}
