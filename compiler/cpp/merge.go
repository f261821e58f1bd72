package cpp

import "strings"

// MergeMethods appends to existing every method whose signature does not
// already appear somewhere in it and reports whether anything was
// appended.  Bodies already present, including hand edited ones, are
// never touched.
func MergeMethods(existing string, methods []Method) (string, bool) {
	var b strings.Builder
	b.WriteString(existing)
	var changed bool
	for _, m := range methods {
		if strings.Contains(b.String(), m.Signature) {
			continue
		}
		b.WriteString(m.Body)
		changed = true
	}
	return b.String(), changed
}
