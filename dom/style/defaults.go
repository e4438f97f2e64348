package style

import (
	"sort"
	"strings"
)

// Display defaults of the user agent for well-known elements. Elements not
// listed here, and all text, fall back to the built-in defaults of the
// style resolver (block for elements, inline for text).
var userAgentDisplay = map[string]string{
	"head":   "none",
	"script": "none",
	"style":  "none",
	"title":  "none",
	"a":      "inline",
	"b":      "inline",
	"code":   "inline",
	"em":     "inline",
	"i":      "inline",
	"span":   "inline",
	"strong": "inline",
	"li":     "list-item",
	"table":  "table",
}

// UserAgentCSS returns the default stylesheet of the user agent, setting
// the display property for well-known elements. Rules are grouped by
// display value and ordered deterministically, e.g.
//
//    b, code, em, i, span, strong { display: inline }
//
func UserAgentCSS() string {
	byDisplay := make(map[string][]string)
	for tag, display := range userAgentDisplay {
		byDisplay[display] = append(byDisplay[display], tag)
	}
	displays := make([]string, 0, len(byDisplay))
	for d := range byDisplay {
		displays = append(displays, d)
	}
	sort.Strings(displays)
	var b strings.Builder
	for _, d := range displays {
		tags := byDisplay[d]
		sort.Strings(tags)
		b.WriteString(strings.Join(tags, ", "))
		b.WriteString(" { display: ")
		b.WriteString(d)
		b.WriteString(" }\n")
	}
	return b.String()
}
