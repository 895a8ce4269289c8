package paginate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeTokenRe  = regexp.MustCompile(`~(\d+)~`)
	placeholderRe = regexp.MustCompile(`\$(?:\$|\{(\w+)\}|([A-Za-z_]\w*))`)
	linkNames     = map[string]bool{
		"link_first":    true,
		"link_last":     true,
		"link_previous": true,
		"link_next":     true,
	}
)

// expandRangeTokens replaces every ~N~ token with render(N).
func expandRangeTokens(format string, render func(radius int) string) string {
	return rangeTokenRe.ReplaceAllStringFunc(format, func(token string) string {
		radius, err := strconv.Atoi(strings.Trim(token, "~"))
		if err != nil {
			return token
		}
		return render(radius)
	})
}

// safeSubstitute replaces $name and ${name} with vars[name], leaving
// unrecognized placeholders verbatim. "$$" escapes a literal dollar sign.
func safeSubstitute(s string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		if m == "$$" {
			return "$"
		}
		name := strings.Trim(m[1:], "{}")
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// formatNeedsLinks reports whether a format string references anything that
// requires a link-generation strategy: a range token or a link_*
// placeholder.
func formatNeedsLinks(format string) bool {
	if rangeTokenRe.MatchString(format) {
		return true
	}
	for _, m := range placeholderRe.FindAllStringSubmatch(format, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if linkNames[name] {
			return true
		}
	}
	return false
}
