package clickatell

import "strings"

// param is one legacy query parameter. The legacy API cares about parameter
// order, so requests carry slices of param instead of a map.
type param struct {
	key   string
	value string
}

// buildQuery renders params in declared order, escaping every value. When to
// is non-empty a trailing to= parameter joins the destinations with commas.
// net/url is not used here because url.Values sorts keys.
func buildQuery(params []param, to []string) string {
	var b strings.Builder
	b.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(QueryEscape(p.value))
	}
	if len(to) > 0 {
		b.WriteString("&to=")
		for i, dest := range to {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(QueryEscape(dest))
		}
	}
	return b.String()
}

type sendRequest struct {
	Text string   `json:"text"`
	To   []string `json:"to"`
}
