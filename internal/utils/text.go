package utils

import "strings"

// ContainsFold reports whether needle occurs in haystack, ignoring case
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ContainsAnyFold reports whether any of the needles occurs in haystack, ignoring case
func ContainsAnyFold(haystack string, needles ...string) bool {
	lower := strings.ToLower(haystack)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// SplitCSV splits a comma-separated value into trimmed, non-empty entries
func SplitCSV(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// NormalizeCSV rewrites a comma-separated value as "a, b, c", dropping empty
// entries and case-insensitive duplicates while keeping first-seen order.
func NormalizeCSV(value string) string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range SplitCSV(value) {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return strings.Join(out, ", ")
}

// NormalizePhone keeps the digits of a phone number and a leading plus sign.
// "+63 912 345 6789" becomes "+639123456789".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		if (r == '+' && i == 0) || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.String() == "+" {
		return ""
	}
	return b.String()
}
