package entities

import (
	"strings"
	"unicode"
)

// NormalizeEmail trims and lowercases an email. It is the ownership key.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsValidEmail is a deliberately light syntax check: one '@', non-empty local
// and domain parts, a dot inside the domain, no whitespace or control runes.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if strings.Contains(local, "@") {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
