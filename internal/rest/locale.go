package rest

import "strings"

// DefaultLocale is used when no candidate source yields a language.
const DefaultLocale = "en-us"

// ResolveLocale picks the request language from ordered candidate
// sources, highest precedence first. Callers pass the sources
// explicitly (content-translation override, interface language cookie
// value, configured default) so the HTTP layer never reads ambient
// storage itself.
func ResolveLocale(candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		return strings.ToLower(strings.ReplaceAll(c, "_", "-"))
	}
	return DefaultLocale
}
