// Package timestamp parses the loosely formatted review timestamps accepted
// in filters and stored on reviews.
package timestamp

import "time"

// Layout is the canonical format new review timestamps are written in.
const Layout = "2006-01-02 15:04:05"

// Accepted layouts, tried in order.
var layouts = []string{
	Layout,
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalize parses text with the first layout that consumes the whole input.
// It returns false when no layout matches, including for the empty string.
//
// time.Parse silently accepts fractional seconds after a seconds field, so a
// match must also format back to exactly the input.
func Normalize(text string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil && t.Format(layout) == text {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders t in the canonical layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}
