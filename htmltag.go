package paginate

import (
	"sort"
	"strings"
)

// MakeHTMLTag creates an HTML tag string:
//
//	MakeHTMLTag("a", "Hello", map[string]string{"href": "/another/page"})
//	-> <a href="/another/page">Hello</a>
//
// With an empty text only the opening tag is returned. Attribute keys are
// emitted in lexicographic order; a leading underscore is stripped from the
// key so that reserved words can be used as attributes ("_class" emits
// 'class="..."').
//
// Warning: attribute values and text are inserted verbatim, without any
// escaping. Pre-escape untrusted values.
func MakeHTMLTag(tag, text string, attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.TrimLeft(keys[i], "_") < strings.TrimLeft(keys[j], "_")
	})

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(strings.TrimLeft(k, "_"))
		b.WriteString(`="`)
		b.WriteString(attrs[k])
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if text != "" {
		b.WriteString(text)
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteByte('>')
	}

	return b.String()
}
