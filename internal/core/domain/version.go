package domain

import "strings"

var bracketStripper = strings.NewReplacer("[", "", "]", "")

// StripBrackets removes every '[' and ']' from a version constraint.
func StripBrackets(constraint string) string {
	return bracketStripper.Replace(constraint)
}

// PinVersion converts a version constraint into its exact-match form.
//
// A bare version ("1.2.3") is a floor in NuGet range notation; the result wraps it as "[1.2.3]".
// Existing brackets are removed first so pinning an already pinned value returns it unchanged.
// It reports false when the constraint is empty or is a real range ("[1.0,2.0)") that has no
// single version to pin to.
func PinVersion(constraint string) (string, bool) {
	token := strings.TrimSpace(StripBrackets(constraint))
	if token == "" || strings.ContainsAny(token, ",()") {
		return "", false
	}
	return "[" + token + "]", true
}

// IsPinned reports whether a constraint is already in exact-match form.
func IsPinned(constraint string) bool {
	exact, ok := PinVersion(constraint)
	return ok && exact == constraint
}
