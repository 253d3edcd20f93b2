package formatter

import "fmt"

// CountNoun formats n with the singular or plural noun, e.g. "1 day", "3 days".
func CountNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
