// Package compat decides which catalog recipes suit a health profile and in
// what order they are offered.
package compat

import "strings"

// Normalize returns the lookup key for an ingredient, allergy or
// restriction name. Units are never converted.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// firstToken returns the first whitespace-delimited word of a normalized name
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// tokenMatch is deliberately loose: a false positive hides a safe recipe,
// a false negative shows an unsafe one. First words match as prefixes in
// either direction, so "egg" and "eggs" catch each other.
func tokenMatch(ingredient, term string) bool {
	ingredient, term = Normalize(ingredient), Normalize(term)
	if ingredient == "" || term == "" {
		return false
	}
	ft, fi := firstToken(term), firstToken(ingredient)
	switch {
	case ingredient == term, ingredient == ft, fi == term, fi == ft:
		return true
	}
	return strings.HasPrefix(fi, ft) || (fi != "" && strings.HasPrefix(ft, fi))
}
