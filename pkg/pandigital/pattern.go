package pandigital

import (
	"fmt"
	"regexp"
	"strings"
)

// compilePattern builds the anchored, case-insensitive character-class
// pre-filter. The quantifier is exact in unique mode and open-ended otherwise.
func compilePattern(alphabet string, minLen int, unique bool) *regexp.Regexp {
	if alphabet == "" {
		return regexp.MustCompile(`^$`)
	}

	quantifier := fmt.Sprintf("{%d,}", minLen)
	if unique {
		quantifier = fmt.Sprintf("{%d}", minLen)
	}

	var class strings.Builder
	class.Grow(len(alphabet) + 2)
	class.WriteByte('[')
	for i := 0; i < len(alphabet); i++ {
		class.WriteString(regexp.QuoteMeta(alphabet[i : i+1]))
	}
	class.WriteByte(']')

	return regexp.MustCompile("(?i)^" + class.String() + quantifier + "$")
}
