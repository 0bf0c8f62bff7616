package params

import (
	"strings"

	"github.com/gobwas/glob"
)

// compilePattern builds a matcher in which only '*' and '?' act as
// metacharacters. Every other glob special is escaped so that names
// containing brackets, braces or backslashes match literally.
func compilePattern(pattern string) (glob.Glob, error) {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		switch r {
		case '[', ']', '{', '}', ',', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return glob.Compile(b.String())
}

// Match returns the ordered subsequence of names matching pattern.
// '*' matches any run of characters and '?' exactly one. A result of
// zero matches is not an error here; callers decide whether it is.
func Match(pattern string, names []string) ([]string, error) {
	g, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	matched := make([]string, 0, len(names))
	for _, name := range names {
		if g.Match(name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

func isPattern(key string) bool {
	return strings.ContainsAny(key, "*?")
}
